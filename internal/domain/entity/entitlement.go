// Package entity contains the core business objects of the project.
package entity

import "slices"

// Tier is a subscription level determining which entitlements are granted.
type Tier string

const (
	TierFree  Tier = "free"
	TierPro   Tier = "pro"
	TierElite Tier = "elite"
)

// orderedTiers lists tiers from cheapest to most expensive.
//
//nolint:gochecknoglobals
var orderedTiers = []Tier{TierFree, TierPro, TierElite}

// Tiers returns all tiers ordered from cheapest to most expensive.
func Tiers() []Tier {
	return slices.Clone(orderedTiers)
}

// String returns the string representation of the Tier.
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the Tier is a valid value.
func (t Tier) IsValid() bool {
	return slices.Contains(orderedTiers, t)
}

// Rank returns the position of the tier in the upgrade path, or -1 for unknown tiers.
func (t Tier) Rank() int {
	return slices.Index(orderedTiers, t)
}

// Entitlement is a named capability gated by subscription tier.
type Entitlement string

const (
	EntitlementBrowseListings    Entitlement = "browse_listings"
	EntitlementBasicValuation    Entitlement = "basic_valuation"
	EntitlementSavedSearches     Entitlement = "saved_searches"
	EntitlementNDAAccess         Entitlement = "nda_access"
	EntitlementDealRoom          Entitlement = "deal_room"
	EntitlementValuationReport   Entitlement = "valuation_report"
	EntitlementAICompare         Entitlement = "ai_compare"
	EntitlementBuyerMatching     Entitlement = "buyer_matching"
	EntitlementAdvancedAnalytics Entitlement = "advanced_analytics"
	EntitlementPrioritySupport   Entitlement = "priority_support"
)

// String returns the string representation of the Entitlement.
func (e Entitlement) String() string {
	return string(e)
}

// EntitlementResult is the outcome of an entitlement check.
type EntitlementResult struct {
	Entitlement  Entitlement `json:"entitlement"`
	HasAccess    bool        `json:"has_access"`
	RequiredTier *Tier       `json:"required_tier"`
	CurrentTier  Tier        `json:"current_tier"`
	Message      string      `json:"message,omitempty"`
}

// PlanCatalog maps each tier to the set of entitlements it grants.
type PlanCatalog struct {
	plans map[Tier]map[Entitlement]struct{}
}

// NewPlanCatalog builds a catalog from a tier to entitlement list mapping.
// Tiers absent from the mapping grant nothing.
func NewPlanCatalog(plans map[Tier][]Entitlement) *PlanCatalog {
	catalog := &PlanCatalog{plans: make(map[Tier]map[Entitlement]struct{}, len(plans))}
	for tier, entitlements := range plans {
		set := make(map[Entitlement]struct{}, len(entitlements))
		for _, e := range entitlements {
			set[e] = struct{}{}
		}
		catalog.plans[tier] = set
	}

	return catalog
}

// DefaultPlanCatalog returns the built-in plan table. Each tier includes everything below it.
func DefaultPlanCatalog() *PlanCatalog {
	free := []Entitlement{
		EntitlementBrowseListings,
		EntitlementBasicValuation,
	}
	pro := append(slices.Clone(free),
		EntitlementSavedSearches,
		EntitlementNDAAccess,
		EntitlementDealRoom,
		EntitlementValuationReport,
	)
	elite := append(slices.Clone(pro),
		EntitlementAICompare,
		EntitlementBuyerMatching,
		EntitlementAdvancedAnalytics,
		EntitlementPrioritySupport,
	)

	return NewPlanCatalog(map[Tier][]Entitlement{
		TierFree:  free,
		TierPro:   pro,
		TierElite: elite,
	})
}

// Grants reports whether the tier's plan includes the entitlement.
func (c *PlanCatalog) Grants(tier Tier, entitlement Entitlement) bool {
	_, ok := c.plans[tier][entitlement]

	return ok
}

// MinimumTier returns the cheapest tier granting the entitlement.
func (c *PlanCatalog) MinimumTier(entitlement Entitlement) (Tier, bool) {
	for _, tier := range orderedTiers {
		if c.Grants(tier, entitlement) {
			return tier, true
		}
	}

	return "", false
}

// Entitlements returns the entitlements granted to a tier in a stable order.
func (c *PlanCatalog) Entitlements(tier Tier) []Entitlement {
	result := make([]Entitlement, 0, len(c.plans[tier]))
	for e := range c.plans[tier] {
		result = append(result, e)
	}
	slices.Sort(result)

	return result
}

// Check evaluates an entitlement for a user currently on the given tier.
func (c *PlanCatalog) Check(tier Tier, entitlement Entitlement) EntitlementResult {
	result := EntitlementResult{
		Entitlement: entitlement,
		CurrentTier: tier,
	}

	required, known := c.MinimumTier(entitlement)
	if !known {
		result.Message = "unknown entitlement: " + entitlement.String()

		return result
	}
	result.RequiredTier = &required

	if c.Grants(tier, entitlement) {
		result.HasAccess = true

		return result
	}

	result.Message = "upgrade to " + required.String() + " to unlock " + entitlement.String()

	return result
}
