// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/app/services"
	"github.com/givehope/givehope/internal/middleware"
	"github.com/givehope/givehope/internal/pkg/auth"
)

// CookieSettings describes how the session cookie is issued.
type CookieSettings struct {
	Name   string
	MaxAge int
	Secure bool
}

// AuthController handles registration, login and logout
type AuthController struct {
	authService services.AuthService
	cookie      CookieSettings
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookie CookieSettings, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, session auth.Session) {
	ctx.SetCookie(c.cookie.Name, session.Token, c.cookie.MaxAge, "/", "", c.cookie.Secure, true)
}

func (c *AuthController) clearSessionCookie(ctx *gin.Context) {
	ctx.SetCookie(c.cookie.Name, "", -1, "/", "", c.cookie.Secure, true)
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a donor or organization account and logs it in. Organizations start unapproved.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} models.User "Account created, session cookie issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or role"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, session, err := c.authService.Register(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, session)
	ctx.JSON(http.StatusCreated, user)
}

// Login handles user login
// @Summary User login
// @Description Verifies credentials and issues a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} models.User "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, session, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	c.setSessionCookie(ctx, session)
	ctx.JSON(http.StatusOK, user)
}

// AdminLogin handles admin console login
// @Summary Admin login
// @Description Verifies credentials and additionally requires the admin role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} models.User "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin-login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, session, err := c.authService.AdminLogin(req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, session)
	ctx.JSON(http.StatusOK, user)
}

// Logout revokes the current session
// @Summary Logout
// @Description Revokes the session behind the cookie and clears it
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token := middleware.SessionToken(ctx); token != "" {
		c.authService.Logout(token)
	}

	c.clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Logged out"})
}

// CurrentUser returns the authenticated principal
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse
// @Router /user [get]
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, middleware.CurrentUser(ctx))
}
