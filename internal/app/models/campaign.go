package models

import (
	"time"
)

// Campaign defines a fundraising effort owned by an organization
type Campaign struct {
	ID             int64      `json:"id" example:"1"`
	Title          string     `json:"title" example:"Clean Water Initiative"`
	Description    string     `json:"description"`
	OrganizationID int64      `json:"organizationId" example:"2"` // Owning user, role=organization
	GoalAmount     float64    `json:"goalAmount" example:"80000"`
	CurrentAmount  float64    `json:"currentAmount" example:"35000"` // Derived: sum of donation amounts, never set by clients
	Category       string     `json:"category" example:"Environment"`
	ImageURL       *string    `json:"imageUrl,omitempty"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	IsActive       bool       `json:"isActive" example:"true"`
	IsApproved     bool       `json:"isApproved" example:"false"` // Admin approval gate for public listing
	CreatedAt      time.Time  `json:"createdAt"`
}

// IsPublic reports whether the campaign appears in public listings.
func (c *Campaign) IsPublic() bool {
	return c.IsActive && c.IsApproved
}
