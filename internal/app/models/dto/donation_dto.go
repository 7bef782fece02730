package dto

// CreateDonationRequest represents a donation request. The donor id is the
// authenticated principal, never taken from the body.
type CreateDonationRequest struct {
	CampaignID  int64   `json:"campaignId" binding:"required,min=1"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Message     *string `json:"message"`
	IsAnonymous bool    `json:"isAnonymous"`
}
