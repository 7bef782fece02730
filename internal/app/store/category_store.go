package store

import (
	"github.com/givehope/givehope/internal/app/models"
	"github.com/givehope/givehope/internal/pkg/apperrors"
)

// NewCategory carries the fields accepted at category creation.
type NewCategory struct {
	Name        string
	Description *string
	ImageURL    *string
}

// GetCategory returns the category by id, or nil if absent.
func (s *Store) GetCategory(id int64) *models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category, ok := s.categories[id]; ok {
		return &category
	}
	return nil
}

// GetCategoryByName returns the category with the given name, or nil.
func (s *Store) GetCategoryByName(name string) *models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, category := range s.categories {
		if category.Name == name {
			c := category
			return &c
		}
	}
	return nil
}

// GetAllCategories returns every category.
func (s *Store) GetAllCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	return categories
}

// CreateCategory assigns the next id and starts campaignCount at zero. Names
// are unique; a duplicate yields ErrCategoryAlreadyExists.
func (s *Store) CreateCategory(data NewCategory) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Name == data.Name {
			return nil, apperrors.ErrCategoryAlreadyExists
		}
	}

	s.categoryIDCounter++
	category := models.Category{
		ID:            s.categoryIDCounter,
		Name:          data.Name,
		Description:   data.Description,
		ImageURL:      data.ImageURL,
		CampaignCount: 0,
	}
	s.categories[category.ID] = category

	return &category, nil
}
