package store

import (
	"math/rand"
	"time"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/pkg/apperrors"
)

// NewCampaign carries the fields accepted at campaign creation. The store
// forces currentAmount to zero no matter what the caller sends.
type NewCampaign struct {
	Title          string
	Description    string
	OrganizationID int64
	GoalAmount     float64
	Category       string
	ImageURL       *string
	StartDate      time.Time
	EndDate        *time.Time
	IsActive       bool
}

// CampaignPatch carries a partial campaign update. Nil fields are left
// untouched. currentAmount is deliberately absent: it moves only through
// CreateDonation.
type CampaignPatch struct {
	Title       *string
	Description *string
	GoalAmount  *float64
	Category    *string
	ImageURL    *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool
	IsApproved  *bool
}

// GetCampaign returns the campaign by id, or nil if absent.
func (s *Store) GetCampaign(id int64) *models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if campaign, ok := s.campaigns[id]; ok {
		return &campaign
	}
	return nil
}

// GetAllCampaigns returns every campaign.
func (s *Store) GetAllCampaigns() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterCampaignsLocked(func(models.Campaign) bool { return true })
}

// GetCampaignsByOrganization returns the campaigns owned by the organization.
func (s *Store) GetCampaignsByOrganization(organizationID int64) []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterCampaignsLocked(func(c models.Campaign) bool { return c.OrganizationID == organizationID })
}

// GetCampaignsByCategory returns the campaigns filed under the category name.
func (s *Store) GetCampaignsByCategory(category string) []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterCampaignsLocked(func(c models.Campaign) bool { return c.Category == category })
}

// GetPendingCampaigns returns campaigns still awaiting admin approval.
func (s *Store) GetPendingCampaigns() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterCampaignsLocked(func(c models.Campaign) bool { return !c.IsApproved })
}

// GetFeaturedCampaigns returns up to limit active campaigns in randomized
// order. The shuffle is reseeded on every call: repeat calls may return a
// different subset, which is the intended variety mechanism, so callers must
// not assume a stable order.
func (s *Store) GetFeaturedCampaigns(limit int) []models.Campaign {
	s.mu.RLock()
	active := s.filterCampaignsLocked(func(c models.Campaign) bool { return c.IsActive })
	s.mu.RUnlock()

	rand.Shuffle(len(active), func(i, j int) {
		active[i], active[j] = active[j], active[i]
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(active) {
		limit = len(active)
	}
	return active[:limit]
}

// CreateCampaign assigns the next id, forces currentAmount to zero, stamps
// createdAt and increments the matching category's campaignCount in the same
// critical section. A category name with no matching record is a pass-through:
// the campaign is still created and no counter moves.
func (s *Store) CreateCampaign(data NewCampaign) *models.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaignIDCounter++
	campaign := models.Campaign{
		ID:             s.campaignIDCounter,
		Title:          data.Title,
		Description:    data.Description,
		OrganizationID: data.OrganizationID,
		GoalAmount:     data.GoalAmount,
		CurrentAmount:  0,
		Category:       data.Category,
		ImageURL:       data.ImageURL,
		StartDate:      data.StartDate,
		EndDate:        data.EndDate,
		IsActive:       data.IsActive,
		IsApproved:     false,
		CreatedAt:      time.Now(),
	}
	s.campaigns[campaign.ID] = campaign

	for id, category := range s.categories {
		if category.Name == campaign.Category {
			category.CampaignCount++
			s.categories[id] = category
			break
		}
	}

	return &campaign
}

// UpdateCampaign merges the patch into the stored record and returns the
// updated campaign, or ErrCampaignNotFound if the id is absent.
func (s *Store) UpdateCampaign(id int64, patch CampaignPatch) (*models.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaigns[id]
	if !ok {
		return nil, apperrors.ErrCampaignNotFound
	}

	if patch.Title != nil {
		campaign.Title = *patch.Title
	}
	if patch.Description != nil {
		campaign.Description = *patch.Description
	}
	if patch.GoalAmount != nil {
		campaign.GoalAmount = *patch.GoalAmount
	}
	if patch.Category != nil {
		campaign.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		campaign.ImageURL = patch.ImageURL
	}
	if patch.StartDate != nil {
		campaign.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		campaign.EndDate = patch.EndDate
	}
	if patch.IsActive != nil {
		campaign.IsActive = *patch.IsActive
	}
	if patch.IsApproved != nil {
		campaign.IsApproved = *patch.IsApproved
	}

	s.campaigns[id] = campaign
	return &campaign, nil
}

// DeleteCampaign removes the record outright and reports whether it existed.
// Category counters are not decremented and donations are not cascaded:
// campaignCount reads as a lifetime counter and the donation ledger is
// append-only.
func (s *Store) DeleteCampaign(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[id]; !ok {
		return false
	}
	delete(s.campaigns, id)
	return true
}

// filterCampaignsLocked scans campaigns under an already-held lock.
func (s *Store) filterCampaignsLocked(match func(models.Campaign) bool) []models.Campaign {
	var campaigns []models.Campaign
	for _, campaign := range s.campaigns {
		if match(campaign) {
			campaigns = append(campaigns, campaign)
		}
	}
	return campaigns
}
