package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/services"
	"github.com/givehope/givehope/internal/middleware"
)

// DonationController handles donation endpoints and platform stats
type DonationController struct {
	donationService services.DonationService
	logger          zerolog.Logger
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService services.DonationService, logger zerolog.Logger) *DonationController {
	return &DonationController{
		donationService: donationService,
		logger:          logger,
	}
}

// CreateDonation records a donation from the authenticated user
// @Summary Make a donation
// @Description Records the donation and updates the campaign's funding total in one step
// @Tags donations
// @Accept json
// @Produce json
// @Param request body dto.CreateDonationRequest true "Donation fields"
// @Success 201 {object} models.Donation
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /donations [post]
func (c *DonationController) CreateDonation(ctx *gin.Context) {
	var req dto.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user := middleware.CurrentUser(ctx)
	donation, err := c.donationService.CreateDonation(user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, donation)
}

// GetCampaignDonations lists the donations of a campaign
// @Summary Donations by campaign
// @Tags donations
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {array} models.Donation
// @Failure 404 {object} dto.ErrorResponse
// @Router /campaigns/{id}/donations [get]
func (c *DonationController) GetCampaignDonations(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	donations, err := c.donationService.DonationsByCampaign(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, donations)
}

// GetStats returns platform-wide aggregates
// @Summary Platform statistics
// @Tags donations
// @Produce json
// @Success 200 {object} store.Stats
// @Router /stats [get]
func (c *DonationController) GetStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.donationService.PlatformStats())
}
