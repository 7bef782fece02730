package dto

import "github.com/givehope/givehope/internal/app/models"

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username        string          `json:"username" binding:"required,min=3,max=50"`
	Password        string          `json:"password" binding:"required,min=6"`
	ConfirmPassword string          `json:"confirmPassword" binding:"required,eqfield=Password"`
	Email           string          `json:"email" binding:"required,email"`
	FullName        string          `json:"fullName" binding:"required"`
	Role            models.RoleType `json:"role" binding:"required"`
	Bio             *string         `json:"bio"`
	ProfileImage    *string         `json:"profileImage"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
