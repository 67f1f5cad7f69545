// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the marketplace.
type Role string

const (
	// RoleBuyer indicates a user looking to acquire a business.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates a user listing a business for sale.
	RoleSeller Role = "seller"
	// RolePartner indicates a broker, advisor or lender working alongside deals.
	RolePartner Role = "partner"
	// RoleAdmin indicates a platform operator.
	RoleAdmin Role = "admin"
	// RoleFounder indicates a founder with access to platform analytics.
	RoleFounder Role = "founder"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RolePartner, RoleAdmin, RoleFounder:
		return true
	default:
		return false
	}
}

// IsSelfAssignable reports whether a user may pick this role during onboarding.
func (r Role) IsSelfAssignable() bool {
	switch r {
	case RoleBuyer, RoleSeller, RolePartner:
		return true
	case RoleAdmin, RoleFounder:
		return false
	default:
		return false
	}
}

// ParseRole converts a string to a Role, reporting whether it is a known value.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// First returns the first role of the list, if any.
func (rs Roles) First() (Role, bool) {
	if len(rs) == 0 {
		return "", false
	}

	return rs[0], true
}

// ToStrings converts Roles to []string for storage and JSON compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
