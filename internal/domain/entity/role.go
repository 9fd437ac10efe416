// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// The set is closed: a value outside the enumeration never passes IsValid,
// so new roles cannot silently slip past an authorization check.
type Role string

const (
	// RoleViewer indicates a regular browsing user.
	RoleViewer Role = "viewer"
	// RoleOwner indicates a business owner.
	RoleOwner Role = "owner"
	// RoleAdmin indicates a moderator with full access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw string into a Role, reporting whether the
// value belongs to the enumeration.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
