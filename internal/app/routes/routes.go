package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/givehope/givehope/internal/app/controllers"
	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/models/dto"
	"github.com/givehope/givehope/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	campaignController *controllers.CampaignController,
	donationController *controllers.DonationController,
	categoryController *controllers.CategoryController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)
	api.POST("/admin-login", authController.AdminLogin)

	// --- Public read routes ---
	api.GET("/campaigns", campaignController.GetAllCampaigns)
	api.GET("/campaigns/featured", campaignController.GetFeaturedCampaigns)
	api.GET("/campaigns/:id", campaignController.GetCampaignByID)
	api.GET("/campaigns/:id/donations", donationController.GetCampaignDonations)
	api.GET("/organizations/:id/campaigns", campaignController.GetOrganizationCampaigns)
	api.GET("/categories", categoryController.GetAllCategories)
	api.GET("/categories/:name/campaigns", categoryController.GetCategoryCampaigns)
	api.GET("/stats", donationController.GetStats)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.POST("/logout", authController.Logout)
		authenticated.GET("/user", authController.CurrentUser)
		authenticated.GET("/user/donations", userController.MyDonations)
		authenticated.GET("/profile", userController.GetProfile)
		authenticated.PATCH("/profile", userController.UpdateProfile)

		authenticated.POST("/donations", donationController.CreateDonation)

		// Campaign mutations; creation additionally requires the
		// organization role, ownership is enforced in the service.
		campaignsOrganization := authenticated.Group("/campaigns")
		campaignsOrganization.Use(authMiddleware.RoleRequired(models.RoleOrganization))
		{
			campaignsOrganization.POST("", campaignController.CreateCampaign)
		}
		authenticated.PATCH("/campaigns/:id", campaignController.UpdateCampaign)
		authenticated.DELETE("/campaigns/:id", campaignController.DeleteCampaign)

		// Admin console
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/organizations", adminController.GetOrganizations)
			admin.GET("/campaigns/pending", adminController.GetPendingCampaigns)
			admin.PATCH("/organizations/:id/approve", adminController.ApproveOrganization)
			admin.PATCH("/organizations/:id/reject", adminController.RejectOrganization)
			admin.PATCH("/campaigns/:id/approve", adminController.ApproveCampaign)
			admin.PATCH("/campaigns/:id/reject", adminController.RejectCampaign)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
