package services

import (
	"time"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/pkg/apperrors"
)

// CampaignService handles campaign reads and owner-gated mutations.
type CampaignService interface {
	ListCampaigns() []models.Campaign
	FeaturedCampaigns(limit int) []models.Campaign
	GetCampaign(id int64) (*models.Campaign, error)
	CampaignsByOrganization(organizationID int64) []models.Campaign
	CreateCampaign(actor *models.User, req *dto.CreateCampaignRequest) (*models.Campaign, error)
	UpdateCampaign(actor *models.User, id int64, req *dto.UpdateCampaignRequest) (*models.Campaign, error)
	DeleteCampaign(actor *models.User, id int64) error
}

type campaignService struct {
	store *store.Store
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(st *store.Store) CampaignService {
	return &campaignService{store: st}
}

func (s *campaignService) ListCampaigns() []models.Campaign {
	return s.store.GetAllCampaigns()
}

func (s *campaignService) FeaturedCampaigns(limit int) []models.Campaign {
	return s.store.GetFeaturedCampaigns(limit)
}

func (s *campaignService) GetCampaign(id int64) (*models.Campaign, error) {
	campaign := s.store.GetCampaign(id)
	if campaign == nil {
		return nil, apperrors.ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *campaignService) CampaignsByOrganization(organizationID int64) []models.Campaign {
	return s.store.GetCampaignsByOrganization(organizationID)
}

// CreateCampaign creates a campaign owned by the acting organization. The
// role is checked by middleware; the approval gate lives here because it is a
// business rule, not a route property: an organization the admin has not
// approved yet cannot create campaigns.
func (s *campaignService) CreateCampaign(actor *models.User, req *dto.CreateCampaignRequest) (*models.Campaign, error) {
	if !actor.IsOrganization() {
		return nil, apperrors.NewForbiddenError("only organizations can create campaigns")
	}
	if !actor.IsApproved {
		return nil, apperrors.NewCustomError(apperrors.ErrOrganizationNotApproved, "organization is awaiting admin approval")
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	if req.EndDate != nil && req.EndDate.Before(startDate) {
		return nil, apperrors.NewBadRequestError("endDate must not be before startDate")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	campaign := s.store.CreateCampaign(store.NewCampaign{
		Title:          req.Title,
		Description:    req.Description,
		OrganizationID: actor.ID,
		GoalAmount:     req.GoalAmount,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		StartDate:      startDate,
		EndDate:        req.EndDate,
		IsActive:       isActive,
	})

	return campaign, nil
}

// UpdateCampaign applies a partial update; only the owning organization may
// touch a campaign.
func (s *campaignService) UpdateCampaign(actor *models.User, id int64, req *dto.UpdateCampaignRequest) (*models.Campaign, error) {
	campaign := s.store.GetCampaign(id)
	if campaign == nil {
		return nil, apperrors.ErrCampaignNotFound
	}
	if campaign.OrganizationID != actor.ID {
		return nil, apperrors.NewForbiddenError("you can only update your own campaigns")
	}

	return s.store.UpdateCampaign(id, store.CampaignPatch{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	})
}

// DeleteCampaign removes the campaign; only the owning organization may do so.
func (s *campaignService) DeleteCampaign(actor *models.User, id int64) error {
	campaign := s.store.GetCampaign(id)
	if campaign == nil {
		return apperrors.ErrCampaignNotFound
	}
	if campaign.OrganizationID != actor.ID {
		return apperrors.NewForbiddenError("you can only delete your own campaigns")
	}

	s.store.DeleteCampaign(id)
	return nil
}
