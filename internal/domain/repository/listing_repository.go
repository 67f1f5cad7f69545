package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing does not exist.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the persistence operations for listings.
type ListingRepository interface {
	// Search returns one page of listings matching a sanitised filter and the total match count.
	Search(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error)

	// FindByID retrieves a single listing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// Create persists a new listing and fills its generated fields.
	Create(ctx context.Context, listing *entity.Listing) error

	// CountActive counts active listings in a track, or all tracks for TrackAll.
	CountActive(ctx context.Context, track entity.Track) (int64, error)
}
