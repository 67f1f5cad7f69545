// Package entity contains the core business objects of the project.
package entity

// PlatformMetrics is the founder-facing snapshot of marketplace activity.
type PlatformMetrics struct {
	Track           Track          `json:"track"`
	ProfilesByRole  map[Role]int64 `json:"profiles_by_role"`
	ProfilesByTier  map[Tier]int64 `json:"profiles_by_tier"`
	ActiveListings  int64          `json:"active_listings"`
	NDAsSigned      int64          `json:"ndas_signed"`
	OffersSubmitted int64          `json:"offers_submitted"`
}

// DealStats aggregates deal-room activity.
type DealStats struct {
	NDAsSigned      int64
	OffersSubmitted int64
}
