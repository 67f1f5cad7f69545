package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDealNotFound is returned when a deal room does not exist.
var ErrDealNotFound = errors.New("deal room not found")

// DealRepository defines the persistence operations for deal rooms, messages and offers.
type DealRepository interface {
	// FindByID retrieves a deal room.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DealRoom, error)

	// FindByListingAndBuyer retrieves the room a buyer holds on a listing.
	FindByListingAndBuyer(ctx context.Context, listingID, buyerID uuid.UUID) (*entity.DealRoom, error)

	// ListByParticipant returns the rooms where the user is buyer or seller, newest first.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.DealRoom, error)

	// Create persists a new room and fills its generated fields.
	Create(ctx context.Context, room *entity.DealRoom) error

	// Update saves the mutable fields of a room.
	Update(ctx context.Context, room *entity.DealRoom) error

	// AddMessage appends a message to a room.
	AddMessage(ctx context.Context, message *entity.DealMessage) error

	// ListMessages returns a room's messages, oldest first.
	ListMessages(ctx context.Context, dealID uuid.UUID) ([]*entity.DealMessage, error)

	// CreateOffer persists an offer.
	CreateOffer(ctx context.Context, offer *entity.Offer) error

	// ListOffers returns a room's offers, oldest first.
	ListOffers(ctx context.Context, dealID uuid.UUID) ([]*entity.Offer, error)

	// Stats aggregates NDA signatures and offers, restricted to a listing track unless TrackAll.
	Stats(ctx context.Context, track entity.Track) (*entity.DealStats, error)
}
