package dto

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a plain message success response
type SuccessResponse struct {
	Message string `json:"message"`
}
