// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealStatus is the lifecycle state of a deal room.
type DealStatus string

const (
	DealOpen   DealStatus = "open"
	DealClosed DealStatus = "closed"
)

// DealRoom is the workspace shared by a buyer and a seller once the buyer signs the NDA.
type DealRoom struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	BuyerID        uuid.UUID
	SellerID       uuid.UUID
	NDASignedAt    *time.Time // Set once; later signatures keep the first timestamp.
	LOISubmittedAt *time.Time // Set when the buyer submits the first offer.
	Status         DealStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsParticipant reports whether the user is the buyer or the seller of the deal.
func (d *DealRoom) IsParticipant(userID uuid.UUID) bool {
	return d.BuyerID == userID || d.SellerID == userID
}

// NDASigned reports whether the buyer has signed the NDA.
func (d *DealRoom) NDASigned() bool {
	return d.NDASignedAt != nil
}

// DealMessage is a single message exchanged inside a deal room.
type DealMessage struct {
	ID        uuid.UUID
	DealID    uuid.UUID
	SenderID  uuid.UUID
	Body      string
	CreatedAt time.Time
}

// OfferStatus is the state of an offer.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// Offer is a letter of intent submitted by the buyer.
type Offer struct {
	ID        uuid.UUID
	DealID    uuid.UUID
	BuyerID   uuid.UUID
	Amount    decimal.Decimal
	Terms     string
	Status    OfferStatus
	CreatedAt time.Time
}

// DealRoomDetail bundles a room with its conversation and offers.
type DealRoomDetail struct {
	Room     *DealRoom
	Messages []*DealMessage
	Offers   []*Offer
}
