package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/services"
	"github.com/givehope/givehope/internal/middleware"
)

// AdminController handles the admin approval console
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// GetOrganizations lists all organization accounts
// @Summary List organizations
// @Tags admin
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/organizations [get]
func (c *AdminController) GetOrganizations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.adminService.Organizations())
}

// GetPendingCampaigns lists campaigns awaiting approval
// @Summary List pending campaigns
// @Tags admin
// @Produce json
// @Success 200 {array} models.Campaign
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/campaigns/pending [get]
func (c *AdminController) GetPendingCampaigns(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.adminService.PendingCampaigns())
}

// ApproveOrganization marks an organization as approved
// @Summary Approve organization
// @Tags admin
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "User is not an organization"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/organizations/{id}/approve [patch]
func (c *AdminController) ApproveOrganization(ctx *gin.Context) {
	c.setOrganizationApproval(ctx, true)
}

// RejectOrganization withdraws an organization's approval
// @Summary Reject organization
// @Tags admin
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "User is not an organization"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/organizations/{id}/reject [patch]
func (c *AdminController) RejectOrganization(ctx *gin.Context) {
	c.setOrganizationApproval(ctx, false)
}

func (c *AdminController) setOrganizationApproval(ctx *gin.Context, approved bool) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.adminService.SetOrganizationApproval(id, approved)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// ApproveCampaign marks a campaign as approved for public listing
// @Summary Approve campaign
// @Tags admin
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/campaigns/{id}/approve [patch]
func (c *AdminController) ApproveCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	campaign, err := c.adminService.ApproveCampaign(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// RejectCampaign withdraws approval and deactivates the campaign
// @Summary Reject campaign
// @Tags admin
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/campaigns/{id}/reject [patch]
func (c *AdminController) RejectCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	campaign, err := c.adminService.RejectCampaign(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}
