// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingStatus is the lifecycle state of a business listing.
type ListingStatus string

const (
	ListingDraft      ListingStatus = "draft"
	ListingActive     ListingStatus = "active"
	ListingUnderOffer ListingStatus = "under_offer"
	ListingSold       ListingStatus = "sold"
)

// IsValid checks if the ListingStatus is a valid value.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingDraft, ListingActive, ListingUnderOffer, ListingSold:
		return true
	default:
		return false
	}
}

// Listing is a business offered for sale on the marketplace.
type Listing struct {
	ID            uuid.UUID       // The Global Unique Identifier (GUID) for the listing.
	SellerID      uuid.UUID       // The user who owns the listing.
	Title         string          // Public headline.
	Summary       string          // Teaser shown before an NDA is signed.
	Industry      string          // Free-form industry label, e.g. "saas", "ecommerce".
	Track         Track           // Marketplace segment; never TrackAll for a stored listing.
	AskingPrice   decimal.Decimal // Asking price in USD.
	AnnualRevenue decimal.Decimal // Trailing twelve month revenue in USD.
	AnnualProfit  decimal.Decimal // Trailing twelve month seller discretionary earnings in USD.
	Location      string          // City/region, empty for remote digital businesses.
	Status        ListingStatus   // Lifecycle state.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ListingSort is the whitelisted ordering for listing searches.
type ListingSort string

const (
	SortNewest      ListingSort = "newest"
	SortPriceAsc    ListingSort = "price_asc"
	SortPriceDesc   ListingSort = "price_desc"
	SortRevenueDesc ListingSort = "revenue_desc"
)

// IsValid checks if the ListingSort is a valid value.
func (s ListingSort) IsValid() bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortRevenueDesc:
		return true
	default:
		return false
	}
}

// ListingFilter is a sanitised search request. Build it with ListingSearchParams.Sanitize.
type ListingFilter struct {
	Query    string // LIKE-escaped, trimmed search text; empty means no text filter.
	Industry string
	Track    Track
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Statuses []ListingStatus
	SellerID *uuid.UUID
	Sort     ListingSort
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the filter's page.
func (f ListingFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
