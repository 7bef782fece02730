package models

// Category defines a taxonomy label with a denormalized usage counter
type Category struct {
	ID            int64   `json:"id" example:"1"`
	Name          string  `json:"name" example:"Education"` // Unique
	Description   *string `json:"description,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	CampaignCount int64   `json:"campaignCount" example:"3"` // Derived: campaigns created under this name
}
