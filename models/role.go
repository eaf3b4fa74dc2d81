package models

import "fmt"

// Role is the authorization level of a user account. The set is closed:
// Admin, Editor, Viewer.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleViewer Role = "Viewer"
)

// ParseRole maps a raw string onto one of the known roles. Anything outside
// the closed set is rejected.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleEditor, RoleViewer:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// In reports whether r belongs to the allowed set. An empty set allows
// every role.
func (r Role) In(allowed ...Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, candidate := range allowed {
		if r == candidate {
			return true
		}
	}
	return false
}
