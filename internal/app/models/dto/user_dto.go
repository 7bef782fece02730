package dto

// UpdateProfileRequest represents a profile update. Username, email, role and
// password cannot be changed through this path; the fields simply do not
// exist here.
type UpdateProfileRequest struct {
	FullName     *string `json:"fullName"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profileImage"`
}
