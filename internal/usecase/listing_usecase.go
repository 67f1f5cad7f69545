package usecase

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxSearchQueryRunes = 100
	defaultPageSize     = 20
	maxPageSize         = 50
	// maxPage keeps (page-1)*pageSize within a 32-bit offset
	maxPage = math.MaxInt32 / maxPageSize
)

// ListingUsecase defines the listing browse, search and publishing operations.
type ListingUsecase interface {
	// SearchListings sanitises the parameters and returns one page of matches. Viewer may be nil.
	SearchListings(ctx context.Context, viewer *entity.Identity, params *ListingSearchParams) (*ListingPage, error)

	// GetListing returns an active listing, or any listing to its own seller.
	GetListing(ctx context.Context, viewer *entity.Identity, id uuid.UUID) (*entity.Listing, error)

	// CreateListing publishes a listing for a seller.
	CreateListing(ctx context.Context, identity *entity.Identity, input *CreateListingInput) (*entity.Listing, error)

	// ListingShareQR renders a PNG QR code linking to an active listing.
	ListingShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// ListingSearchParams is the raw, untrusted search request.
type ListingSearchParams struct {
	Query    string `query:"q"`
	Industry string `query:"industry"`
	Track    string `query:"track"`
	MinPrice string `query:"min_price"`
	MaxPrice string `query:"max_price"`
	Sort     string `query:"sort"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
	Mine     bool   `query:"mine"`
}

// Sanitize turns the raw parameters into a filter safe to hand to a repository.
// Mine only applies when there is a viewer; it lists every status of the viewer's own listings.
func (p *ListingSearchParams) Sanitize(viewer *entity.Identity) entity.ListingFilter {
	filter := entity.ListingFilter{
		Query:    escapeLike(truncateRunes(strings.TrimSpace(p.Query), maxSearchQueryRunes)),
		Industry: strings.ToLower(strings.TrimSpace(p.Industry)),
		Track:    entity.ParseTrack(strings.ToLower(strings.TrimSpace(p.Track))),
		MinPrice: parsePrice(p.MinPrice),
		MaxPrice: parsePrice(p.MaxPrice),
		Sort:     entity.ListingSort(strings.ToLower(strings.TrimSpace(p.Sort))),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		filter.MinPrice, filter.MaxPrice = filter.MaxPrice, filter.MinPrice
	}
	if !filter.Sort.IsValid() {
		filter.Sort = entity.SortNewest
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Page > maxPage {
		filter.Page = maxPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	if p.Mine && viewer != nil {
		sellerID := viewer.ID
		filter.SellerID = &sellerID
	} else {
		filter.Statuses = []entity.ListingStatus{entity.ListingActive}
	}

	return filter
}

// parsePrice drops anything that is not a non-negative decimal.
func parsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return nil
	}

	return &price
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit])
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)

	return s
}

// CreateListingInput is the payload for publishing a listing.
type CreateListingInput struct {
	Title         string          `json:"title" validate:"required,min=3,max=200"`
	Summary       string          `json:"summary" validate:"max=5000"`
	Industry      string          `json:"industry" validate:"required,max=100"`
	Track         string          `json:"track" validate:"required,oneof=operational digital"`
	AskingPrice   decimal.Decimal `json:"asking_price"`
	AnnualRevenue decimal.Decimal `json:"annual_revenue"`
	AnnualProfit  decimal.Decimal `json:"annual_profit"`
	Location      string          `json:"location" validate:"max=200"`
	Publish       bool            `json:"publish"`
}

// --- Output DTOs ---

// ListingPage is one page of search results.
type ListingPage struct {
	Items    []*entity.Listing
	Total    int64
	Page     int
	PageSize int
}
