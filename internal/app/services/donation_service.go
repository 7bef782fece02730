package services

import (
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/pkg/apperrors"
)

// DonationService handles the append-only donation ledger and the platform
// stats derived from it.
type DonationService interface {
	CreateDonation(donorID int64, req *dto.CreateDonationRequest) (*models.Donation, error)
	DonationsByCampaign(campaignID int64) ([]models.Donation, error)
	DonationsByUser(userID int64) []models.Donation
	PlatformStats() store.Stats
}

type donationService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewDonationService creates a new DonationService
func NewDonationService(st *store.Store, logger zerolog.Logger) DonationService {
	return &donationService{store: st, logger: logger}
}

// CreateDonation records a donation against an existing campaign. The store
// bumps the campaign's currentAmount in the same transaction.
func (s *donationService) CreateDonation(donorID int64, req *dto.CreateDonationRequest) (*models.Donation, error) {
	if s.store.GetCampaign(req.CampaignID) == nil {
		return nil, apperrors.ErrCampaignNotFound
	}

	donation := s.store.CreateDonation(store.NewDonation{
		CampaignID:  req.CampaignID,
		DonorID:     donorID,
		Amount:      req.Amount,
		Message:     req.Message,
		IsAnonymous: req.IsAnonymous,
	})

	s.logger.Info().
		Int64("donationID", donation.ID).
		Int64("campaignID", donation.CampaignID).
		Float64("amount", donation.Amount).
		Msg("Donation recorded")

	return donation, nil
}

// DonationsByCampaign lists the donations of an existing campaign.
func (s *donationService) DonationsByCampaign(campaignID int64) ([]models.Donation, error) {
	if s.store.GetCampaign(campaignID) == nil {
		return nil, apperrors.ErrCampaignNotFound
	}
	return s.store.GetDonationsByCampaign(campaignID), nil
}

func (s *donationService) DonationsByUser(userID int64) []models.Donation {
	return s.store.GetDonationsByUser(userID)
}

func (s *donationService) PlatformStats() store.Stats {
	return s.store.GetStats()
}
