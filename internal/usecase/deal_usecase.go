package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealUsecase defines the deal-room workflow between a buyer and a seller.
type DealUsecase interface {
	// SignNDA opens the buyer's room on the listing if needed and records the signature.
	// Signing again is a no-op that returns the existing room.
	SignNDA(ctx context.Context, identity *entity.Identity, listingID uuid.UUID) (*entity.DealRoom, error)

	GetDealRoom(ctx context.Context, identity *entity.Identity, dealID uuid.UUID) (*entity.DealRoomDetail, error)
	ListDealRooms(ctx context.Context, identity *entity.Identity) ([]*entity.DealRoom, error)
	SendMessage(ctx context.Context, identity *entity.Identity, dealID uuid.UUID, body string) (*entity.DealMessage, error)
	SubmitOffer(ctx context.Context, identity *entity.Identity, dealID uuid.UUID, input *SubmitOfferInput) (*entity.Offer, error)
}

// --- Input DTOs ---

// SendMessageInput is the payload for a deal-room message.
type SendMessageInput struct {
	Body string `json:"body" validate:"required,max=5000"`
}

// SubmitOfferInput is the payload of a letter of intent.
type SubmitOfferInput struct {
	Amount decimal.Decimal `json:"amount"`
	Terms  string          `json:"terms" validate:"max=10000"`
}
