package services

import (
	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/app/store"
)

// CategoryService handles the campaign taxonomy.
type CategoryService interface {
	ListCategories() []models.Category
	CampaignsByCategory(name string) []models.Campaign
}

type categoryService struct {
	store *store.Store
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(st *store.Store) CategoryService {
	return &categoryService{store: st}
}

func (s *categoryService) ListCategories() []models.Category {
	return s.store.GetAllCategories()
}

func (s *categoryService) CampaignsByCategory(name string) []models.Campaign {
	return s.store.GetCampaignsByCategory(name)
}
