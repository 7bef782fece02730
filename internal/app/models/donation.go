package models

import (
	"time"
)

// Donation defines a single contribution. Donations are append-only: once
// recorded they are never updated or deleted.
type Donation struct {
	ID          int64     `json:"id" example:"1"`
	CampaignID  int64     `json:"campaignId" example:"3"`
	DonorID     int64     `json:"donorId" example:"5"` // The authenticated actor at creation time
	Amount      float64   `json:"amount" example:"50"`
	Message     *string   `json:"message,omitempty"` // Nulled when the donation is anonymous
	IsAnonymous bool      `json:"isAnonymous" example:"false"`
	CreatedAt   time.Time `json:"createdAt"`
}
