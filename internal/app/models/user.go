package models

import (
	"time"
)

// User defines a platform account: a donor, an organization or the admin
type User struct {
	ID           int64     `json:"id" example:"1"`                                // Unique identifier for the user
	Username     string    `json:"username" example:"childrenfund"`               // Unique login name
	Password     string    `json:"-"`                                             // Hashed password (excluded from JSON)
	Email        string    `json:"email" example:"info@childrenfund.org"`         // Unique email address
	FullName     string    `json:"fullName" example:"Children's Hope Foundation"` // Display name
	Role         RoleType  `json:"role" example:"organization"`                   // donor, organization or admin
	Bio          *string   `json:"bio,omitempty"`                                 // Short profile text (nullable)
	ProfileImage *string   `json:"profileImage,omitempty"`                        // Profile image URL (nullable)
	IsApproved   bool      `json:"isApproved" example:"true"`                     // Admin approval, meaningful for organizations
	CreatedAt    time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`      // Timestamp when the account was created
}

// IsOrganization reports whether the user holds the organization role.
func (u *User) IsOrganization() bool {
	return u.Role == RoleOrganization
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
