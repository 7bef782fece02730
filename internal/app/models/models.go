package models

// RoleType defines the user role type
type RoleType string

const (
	RoleDonor        RoleType = "donor"
	RoleOrganization RoleType = "organization"
	RoleAdmin        RoleType = "admin"
)

// Valid reports whether the role is one of the three known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleDonor, RoleOrganization, RoleAdmin:
		return true
	}
	return false
}
