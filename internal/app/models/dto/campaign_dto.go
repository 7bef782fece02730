package dto

import "time"

// CreateCampaignRequest represents a campaign creation request. The
// organization id and currentAmount are taken from the server side, never
// from the request body.
type CreateCampaignRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	GoalAmount  float64    `json:"goalAmount" binding:"required,gt=0"`
	Category    string     `json:"category" binding:"required"`
	ImageURL    *string    `json:"imageUrl"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    *bool      `json:"isActive"`
}

// UpdateCampaignRequest represents a partial campaign update. Nil fields are
// left untouched. Approval and funding state are not client-writable here.
type UpdateCampaignRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	GoalAmount  *float64   `json:"goalAmount" binding:"omitempty,gt=0"`
	Category    *string    `json:"category"`
	ImageURL    *string    `json:"imageUrl"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    *bool      `json:"isActive"`
}
