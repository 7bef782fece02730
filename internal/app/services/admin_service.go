package services

import (
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/pkg/apperrors"
)

// AdminService handles the admin approval workflow for organizations and
// campaigns. Role enforcement happens in middleware; these methods assume an
// admin actor.
type AdminService interface {
	Organizations() []models.User
	PendingCampaigns() []models.Campaign
	SetOrganizationApproval(id int64, approved bool) (*models.User, error)
	ApproveCampaign(id int64) (*models.Campaign, error)
	RejectCampaign(id int64) (*models.Campaign, error)
}

type adminService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(st *store.Store, logger zerolog.Logger) AdminService {
	return &adminService{store: st, logger: logger}
}

func (s *adminService) Organizations() []models.User {
	return s.store.GetUsersByRole(models.RoleOrganization)
}

func (s *adminService) PendingCampaigns() []models.Campaign {
	return s.store.GetPendingCampaigns()
}

// SetOrganizationApproval flips the approval flag on an organization account.
// Targeting a non-organization user is a bad request, not a forbidden one.
func (s *adminService) SetOrganizationApproval(id int64, approved bool) (*models.User, error) {
	user := s.store.GetUser(id)
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.IsOrganization() {
		return nil, apperrors.ErrNotAnOrganization
	}

	updated, err := s.store.UpdateUser(id, store.UserPatch{IsApproved: &approved})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("organizationID", id).Bool("approved", approved).Msg("Organization approval updated")
	return updated, nil
}

// ApproveCampaign marks the campaign approved for public listing.
func (s *adminService) ApproveCampaign(id int64) (*models.Campaign, error) {
	approved := true
	campaign, err := s.store.UpdateCampaign(id, store.CampaignPatch{IsApproved: &approved})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("campaignID", id).Msg("Campaign approved")
	return campaign, nil
}

// RejectCampaign withdraws approval and deactivates the campaign in one
// update, so it drops out of the public listing immediately.
func (s *adminService) RejectCampaign(id int64) (*models.Campaign, error) {
	rejected := false
	campaign, err := s.store.UpdateCampaign(id, store.CampaignPatch{IsApproved: &rejected, IsActive: &rejected})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("campaignID", id).Msg("Campaign rejected")
	return campaign, nil
}
