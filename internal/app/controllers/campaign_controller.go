package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/services"
	"github.com/givehope/givehope/internal/middleware"
)

const defaultFeaturedLimit = 3

// CampaignController handles campaign endpoints
type CampaignController struct {
	campaignService services.CampaignService
	logger          zerolog.Logger
}

// NewCampaignController creates a new CampaignController
func NewCampaignController(campaignService services.CampaignService, logger zerolog.Logger) *CampaignController {
	return &CampaignController{
		campaignService: campaignService,
		logger:          logger,
	}
}

// GetAllCampaigns lists every campaign
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Success 200 {array} models.Campaign
// @Router /campaigns [get]
func (c *CampaignController) GetAllCampaigns(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.campaignService.ListCampaigns())
}

// GetFeaturedCampaigns returns a random subset of active campaigns
// @Summary Featured campaigns
// @Description Returns up to limit active campaigns; the subset is reshuffled per call
// @Tags campaigns
// @Produce json
// @Param limit query int false "Maximum number of campaigns" default(3)
// @Success 200 {array} models.Campaign
// @Router /campaigns/featured [get]
func (c *CampaignController) GetFeaturedCampaigns(ctx *gin.Context) {
	limit := defaultFeaturedLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "limit must be a non-negative integer")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("limit")))
			return
		}
		limit = parsed
	}

	ctx.JSON(http.StatusOK, c.campaignService.FeaturedCampaigns(limit))
}

// GetCampaignByID returns a single campaign
// @Summary Get campaign
// @Tags campaigns
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} dto.ErrorResponse
// @Router /campaigns/{id} [get]
func (c *CampaignController) GetCampaignByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	campaign, err := c.campaignService.GetCampaign(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// CreateCampaign creates a campaign for the acting organization
// @Summary Create campaign
// @Description Requires an approved organization account. currentAmount always starts at zero.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body dto.CreateCampaignRequest true "Campaign fields"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not an organization, or not yet approved"
// @Router /campaigns [post]
func (c *CampaignController) CreateCampaign(ctx *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user := middleware.CurrentUser(ctx)
	campaign, err := c.campaignService.CreateCampaign(user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("campaignID", campaign.ID).Int64("organizationID", user.ID).Msg("Campaign created")
	ctx.JSON(http.StatusCreated, campaign)
}

// UpdateCampaign applies a partial update to an owned campaign
// @Summary Update campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path int true "Campaign ID"
// @Param request body dto.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} models.Campaign
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse
// @Router /campaigns/{id} [patch]
func (c *CampaignController) UpdateCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	campaign, err := c.campaignService.UpdateCampaign(middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// DeleteCampaign removes an owned campaign
// @Summary Delete campaign
// @Tags campaigns
// @Param id path int true "Campaign ID"
// @Success 204 "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse
// @Router /campaigns/{id} [delete]
func (c *CampaignController) DeleteCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.campaignService.DeleteCampaign(middleware.CurrentUser(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetOrganizationCampaigns lists campaigns owned by an organization
// @Summary Campaigns by organization
// @Tags campaigns
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {array} models.Campaign
// @Router /organizations/{id}/campaigns [get]
func (c *CampaignController) GetOrganizationCampaigns(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, c.campaignService.CampaignsByOrganization(id))
}

// parseIDParam reads a positive int64 path parameter or writes a 400.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid id parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField(name)))
		return 0, false
	}
	return id, true
}
