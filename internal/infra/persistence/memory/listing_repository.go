package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

type listingRepository struct {
	v view
}

func (repo *listingRepository) Search(_ context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	needle := strings.ToLower(unescapeLike(filter.Query))

	var matched []entity.Listing
	repo.v.read(func(d *dataset) {
		for _, l := range d.listings {
			if matchesListing(l, filter, needle) {
				matched = append(matched, l)
			}
		}
	})

	sortListings(matched, filter.Sort)

	total := int64(len(matched))
	start := filter.Offset()
	if start < 0 || start > len(matched) {
		start = len(matched)
	}
	end := min(start+max(filter.PageSize, 0), len(matched))

	page := make([]*entity.Listing, 0, end-start)
	for i := start; i < end; i++ {
		l := matched[i]
		page = append(page, &l)
	}

	return page, total, nil
}

func (repo *listingRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Listing, error) {
	var (
		listing entity.Listing
		found   bool
	)
	repo.v.read(func(d *dataset) {
		listing, found = d.listings[id]
	})
	if !found {
		return nil, repository.ErrListingNotFound
	}

	return &listing, nil
}

func (repo *listingRepository) Create(_ context.Context, listing *entity.Listing) error {
	return repo.v.write(func(d *dataset) error {
		if listing.ID == uuid.Nil {
			listing.ID = newID()
		}
		now := time.Now()
		listing.CreatedAt = now
		listing.UpdatedAt = now
		d.listings[listing.ID] = *listing

		return nil
	})
}

func (repo *listingRepository) CountActive(_ context.Context, track entity.Track) (int64, error) {
	var count int64
	repo.v.read(func(d *dataset) {
		for _, l := range d.listings {
			if l.Status == entity.ListingActive && matchesTrack(l.Track, track) {
				count++
			}
		}
	})

	return count, nil
}

func matchesListing(l entity.Listing, f entity.ListingFilter, needle string) bool {
	if needle != "" &&
		!strings.Contains(strings.ToLower(l.Title), needle) &&
		!strings.Contains(strings.ToLower(l.Summary), needle) {
		return false
	}
	if f.Industry != "" && l.Industry != f.Industry {
		return false
	}
	if !matchesTrack(l.Track, f.Track) {
		return false
	}
	if f.MinPrice != nil && l.AskingPrice.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && l.AskingPrice.GreaterThan(*f.MaxPrice) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, l.Status) {
		return false
	}
	if f.SellerID != nil && l.SellerID != *f.SellerID {
		return false
	}

	return true
}

func matchesTrack(have, want entity.Track) bool {
	return want == entity.TrackAll || !want.IsValid() || have == want
}

func sortListings(listings []entity.Listing, order entity.ListingSort) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		switch order {
		case entity.SortPriceAsc:
			if !a.AskingPrice.Equal(b.AskingPrice) {
				return a.AskingPrice.LessThan(b.AskingPrice)
			}

			return a.ID.String() < b.ID.String()
		case entity.SortPriceDesc:
			if !a.AskingPrice.Equal(b.AskingPrice) {
				return a.AskingPrice.GreaterThan(b.AskingPrice)
			}
		case entity.SortRevenueDesc:
			if !a.AnnualRevenue.Equal(b.AnnualRevenue) {
				return a.AnnualRevenue.GreaterThan(b.AnnualRevenue)
			}
		case entity.SortNewest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}

		return a.ID.String() > b.ID.String()
	})
}

// unescapeLike reverses the LIKE escaping applied to search text.
func unescapeLike(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true

			continue
		}
		escaped = false
		b.WriteRune(r)
	}

	return b.String()
}
