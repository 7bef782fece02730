package store

import (
	"time"

	"github.com/givehope/givehope/internal/app/models"
)

// NewDonation carries the fields accepted at donation creation.
type NewDonation struct {
	CampaignID  int64
	DonorID     int64
	Amount      float64
	Message     *string
	IsAnonymous bool
}

// GetDonation returns the donation by id, or nil if absent.
func (s *Store) GetDonation(id int64) *models.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if donation, ok := s.donations[id]; ok {
		return &donation
	}
	return nil
}

// GetDonationsByCampaign returns all donations against the campaign.
func (s *Store) GetDonationsByCampaign(campaignID int64) []models.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterDonationsLocked(func(d models.Donation) bool { return d.CampaignID == campaignID })
}

// GetDonationsByUser returns all donations made by the user.
func (s *Store) GetDonationsByUser(userID int64) []models.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterDonationsLocked(func(d models.Donation) bool { return d.DonorID == userID })
}

// CreateDonation appends the donation to the ledger and adds its amount to the
// parent campaign's currentAmount in the same critical section, so no reader
// ever observes the ledger and the aggregate out of step. Anonymous donations
// drop their message. A missing parent campaign still records the donation
// and skips the increment; route-level validation is expected to have
// rejected that case already.
func (s *Store) CreateDonation(data NewDonation) *models.Donation {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := data.Message
	if data.IsAnonymous {
		message = nil
	}

	s.donationIDCounter++
	donation := models.Donation{
		ID:          s.donationIDCounter,
		CampaignID:  data.CampaignID,
		DonorID:     data.DonorID,
		Amount:      data.Amount,
		Message:     message,
		IsAnonymous: data.IsAnonymous,
		CreatedAt:   time.Now(),
	}
	s.donations[donation.ID] = donation

	if campaign, ok := s.campaigns[donation.CampaignID]; ok {
		campaign.CurrentAmount += donation.Amount
		s.campaigns[campaign.ID] = campaign
	}

	return &donation
}

// filterDonationsLocked scans donations under an already-held lock.
func (s *Store) filterDonationsLocked(match func(models.Donation) bool) []models.Donation {
	var donations []models.Donation
	for _, donation := range s.donations {
		if match(donation) {
			donations = append(donations, donation)
		}
	}
	return donations
}
