// Package entity contains the core business objects of the project.
package entity

// Destination is the canonical route a user lands on after signing in.
type Destination string

const (
	DestinationAdmin            Destination = "/admin"
	DestinationFounder          Destination = "/founder"
	DestinationOnboarding       Destination = "/onboarding"
	DestinationBuyerDashboard   Destination = "/dashboard/buyer"
	DestinationSellerDashboard  Destination = "/dashboard/seller"
	DestinationPartnerDashboard Destination = "/dashboard/partner"
)

// String returns the string representation of the Destination.
func (d Destination) String() string {
	return string(d)
}

// ResolveDestination computes the single landing route for a profile.
// A nil profile is treated as a user who has not onboarded yet.
func ResolveDestination(profile *Profile) Destination {
	if profile == nil {
		return DestinationOnboarding
	}

	if profile.Role != nil {
		switch *profile.Role {
		case RoleAdmin:
			return DestinationAdmin
		case RoleFounder:
			return DestinationFounder
		case RoleBuyer, RoleSeller, RolePartner:
		}
	}

	if !profile.IsOnboarded() {
		return DestinationOnboarding
	}

	return dashboardFor(profile.PrimaryRole())
}

// dashboardFor maps a role to its dashboard. Operator roles only get here when they appear as
// a fallback from the roles list, never as the primary role, and land on the buyer dashboard.
func dashboardFor(role Role) Destination {
	switch role {
	case RoleSeller:
		return DestinationSellerDashboard
	case RolePartner:
		return DestinationPartnerDashboard
	case RoleBuyer, RoleAdmin, RoleFounder:
		return DestinationBuyerDashboard
	default:
		return DestinationBuyerDashboard
	}
}
