// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a registered customer.
	RoleUser Role = "user"
	// RoleAdmin indicates a studio administrator.
	RoleAdmin Role = "admin"
	// RoleGuest indicates an account provisioned during guest checkout.
	RoleGuest Role = "guest"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleGuest:
		return true
	default:
		return false
	}
}
