package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/services"
	"github.com/givehope/givehope/internal/middleware"
)

// UserController handles profile and per-user donation endpoints
type UserController struct {
	authService     services.AuthService
	donationService services.DonationService
	logger          zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(authService services.AuthService, donationService services.DonationService, logger zerolog.Logger) *UserController {
	return &UserController{
		authService:     authService,
		donationService: donationService,
		logger:          logger,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, middleware.CurrentUser(ctx))
}

// UpdateProfile applies a partial profile update to the authenticated user.
// Username, email, role and password are not reachable through this endpoint.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse
// @Router /profile [patch]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user := middleware.CurrentUser(ctx)
	updated, err := c.authService.UpdateProfile(user.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// MyDonations lists the authenticated user's donations
// @Summary List own donations
// @Tags users
// @Produce json
// @Success 200 {array} models.Donation
// @Failure 401 {object} dto.ErrorResponse
// @Router /user/donations [get]
func (c *UserController) MyDonations(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, c.donationService.DonationsByUser(user.ID))
}
