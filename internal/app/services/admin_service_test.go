package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/store"
	"github.com/givehope/givehope/internal/pkg/apperrors"
)

func TestSetOrganizationApproval(t *testing.T) {
	st := store.New()
	svc := NewAdminService(st, zerolog.Nop())

	org := seedUser(t, st, "org1", models.RoleOrganization, false)
	donor := seedUser(t, st, "donor1", models.RoleDonor, true)

	approved, err := svc.SetOrganizationApproval(org.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	revoked, err := svc.SetOrganizationApproval(org.ID, false)
	require.NoError(t, err)
	assert.False(t, revoked.IsApproved)

	_, err = svc.SetOrganizationApproval(donor.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrNotAnOrganization)

	_, err = svc.SetOrganizationApproval(9999, true)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestOrganizationsListsOnlyOrganizationAccounts(t *testing.T) {
	st := store.New()
	svc := NewAdminService(st, zerolog.Nop())

	seedUser(t, st, "org1", models.RoleOrganization, true)
	seedUser(t, st, "org2", models.RoleOrganization, false)
	seedUser(t, st, "donor1", models.RoleDonor, true)

	orgs := svc.Organizations()
	require.Len(t, orgs, 2)
	for _, org := range orgs {
		assert.Equal(t, models.RoleOrganization, org.Role)
	}
}

func TestApproveAndRejectCampaign(t *testing.T) {
	st := store.New()
	adminSvc := NewAdminService(st, zerolog.Nop())
	campaignSvc := NewCampaignService(st)

	org := seedUser(t, st, "org1", models.RoleOrganization, true)
	campaign, err := campaignSvc.CreateCampaign(org, campaignRequest("Pending"))
	require.NoError(t, err)

	require.Len(t, adminSvc.PendingCampaigns(), 1)

	approved, err := adminSvc.ApproveCampaign(campaign.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.True(t, approved.IsPublic())
	assert.Empty(t, adminSvc.PendingCampaigns())

	rejected, err := adminSvc.RejectCampaign(campaign.ID)
	require.NoError(t, err)
	assert.False(t, rejected.IsApproved)
	assert.False(t, rejected.IsActive, "rejection also deactivates")
	assert.False(t, rejected.IsPublic())

	_, err = adminSvc.ApproveCampaign(9999)
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)
}

func TestDonationServiceCreateAndAggregate(t *testing.T) {
	st := store.New()
	donationSvc := NewDonationService(st, zerolog.Nop())
	campaignSvc := NewCampaignService(st)

	org := seedUser(t, st, "org1", models.RoleOrganization, true)
	donor := seedUser(t, st, "donor1", models.RoleDonor, true)
	campaign, err := campaignSvc.CreateCampaign(org, campaignRequest("Funded"))
	require.NoError(t, err)

	donation, err := donationSvc.CreateDonation(donor.ID, &dto.CreateDonationRequest{
		CampaignID: campaign.ID,
		Amount:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, donor.ID, donation.DonorID)

	got, err := campaignSvc.GetCampaign(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(50), got.CurrentAmount)

	_, err = donationSvc.CreateDonation(donor.ID, &dto.CreateDonationRequest{
		CampaignID: 9999,
		Amount:     50,
	})
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)

	listed, err := donationSvc.DonationsByCampaign(campaign.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = donationSvc.DonationsByCampaign(9999)
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)

	stats := donationSvc.PlatformStats()
	assert.Equal(t, int64(1), stats.TotalDonors)
	assert.Equal(t, float64(50), stats.TotalDonated)
}
