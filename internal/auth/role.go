package auth

import "strings"

// Role is the closed set of portal roles.
type Role string

const (
	RoleLandlord        Role = "landlord"
	RolePropertyManager Role = "property_manager"
	RoleTenant          Role = "tenant"
	RoleGuest           Role = "guest"
)

// Roles lists every role variant.
func Roles() []Role {
	return []Role{RoleLandlord, RolePropertyManager, RoleTenant, RoleGuest}
}

// ParseRole maps a backend role name (LANDLORD, ROLE_TENANT, property_manager, ...)
// to a Role. Unknown names are treated as guest.
func ParseRole(s string) Role {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "role_")
	switch Role(s) {
	case RoleLandlord, RolePropertyManager, RoleTenant:
		return Role(s)
	default:
		return RoleGuest
	}
}
