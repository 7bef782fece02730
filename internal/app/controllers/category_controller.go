package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/givehope/givehope/internal/app/services"
)

// CategoryController handles category endpoints
type CategoryController struct {
	categoryService services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// GetAllCategories lists every category with its campaign counter
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.categoryService.ListCategories())
}

// GetCategoryCampaigns lists campaigns filed under a category name
// @Summary Campaigns by category
// @Tags categories
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {array} models.Campaign
// @Router /categories/{name}/campaigns [get]
func (c *CategoryController) GetCategoryCampaigns(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.categoryService.CampaignsByCategory(ctx.Param("name")))
}
