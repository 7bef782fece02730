package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/pkg/apperrors"
)

func seedUser(t *testing.T, st *store.Store, username string, role models.RoleType, approved bool) *models.User {
	t.Helper()
	user, err := st.CreateUser(store.NewUser{
		Username: username,
		Password: "hashed",
		Email:    username + "@example.com",
		FullName: "Test User",
		Role:     role,
	})
	require.NoError(t, err)

	if user.IsApproved != approved {
		user, err = st.UpdateUser(user.ID, store.UserPatch{IsApproved: &approved})
		require.NoError(t, err)
	}
	return user
}

func campaignRequest(title string) *dto.CreateCampaignRequest {
	return &dto.CreateCampaignRequest{
		Title:       title,
		Description: "Help us help them",
		GoalAmount:  5000,
		Category:    "Health",
	}
}

func TestCreateCampaignRequiresApprovedOrganization(t *testing.T) {
	st := store.New()
	svc := NewCampaignService(st)

	donor := seedUser(t, st, "donor1", models.RoleDonor, true)
	_, err := svc.CreateCampaign(donor, campaignRequest("Nope"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	pendingOrg := seedUser(t, st, "pending", models.RoleOrganization, false)
	_, err = svc.CreateCampaign(pendingOrg, campaignRequest("Still nope"))
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotApproved)

	approvedOrg := seedUser(t, st, "approved", models.RoleOrganization, true)
	campaign, err := svc.CreateCampaign(approvedOrg, campaignRequest("Finally"))
	require.NoError(t, err)
	assert.Equal(t, approvedOrg.ID, campaign.OrganizationID)
	assert.False(t, campaign.IsApproved, "new campaigns await admin review")
	assert.Zero(t, campaign.CurrentAmount)
}

func TestCreateCampaignDateDefaultsAndValidation(t *testing.T) {
	st := store.New()
	svc := NewCampaignService(st)
	org := seedUser(t, st, "org1", models.RoleOrganization, true)

	before := time.Now()
	campaign, err := svc.CreateCampaign(org, campaignRequest("Dated"))
	require.NoError(t, err)
	assert.False(t, campaign.StartDate.Before(before), "startDate defaults to now")
	assert.True(t, campaign.IsActive, "campaigns default to active")

	start := time.Now()
	end := start.Add(-time.Hour)
	req := campaignRequest("Backwards")
	req.StartDate = &start
	req.EndDate = &end
	_, err = svc.CreateCampaign(org, req)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateCampaignOwnership(t *testing.T) {
	st := store.New()
	svc := NewCampaignService(st)
	owner := seedUser(t, st, "owner", models.RoleOrganization, true)
	other := seedUser(t, st, "other", models.RoleOrganization, true)

	campaign, err := svc.CreateCampaign(owner, campaignRequest("Mine"))
	require.NoError(t, err)

	title := "Renamed"
	_, err = svc.UpdateCampaign(other, campaign.ID, &dto.UpdateCampaignRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdateCampaign(owner, campaign.ID, &dto.UpdateCampaignRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	_, err = svc.UpdateCampaign(owner, 9999, &dto.UpdateCampaignRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)
}

func TestDeleteCampaignOwnership(t *testing.T) {
	st := store.New()
	svc := NewCampaignService(st)
	owner := seedUser(t, st, "owner", models.RoleOrganization, true)
	other := seedUser(t, st, "other", models.RoleOrganization, true)

	campaign, err := svc.CreateCampaign(owner, campaignRequest("Mine"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteCampaign(other, campaign.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.DeleteCampaign(owner, campaign.ID))
	assert.ErrorIs(t, svc.DeleteCampaign(owner, campaign.ID), apperrors.ErrCampaignNotFound)
}

func TestGetCampaign(t *testing.T) {
	st := store.New()
	svc := NewCampaignService(st)
	org := seedUser(t, st, "org1", models.RoleOrganization, true)

	created, err := svc.CreateCampaign(org, campaignRequest("Findable"))
	require.NoError(t, err)

	got, err := svc.GetCampaign(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetCampaign(9999)
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)
}
