package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealRoomModel mirrors the 'deal_rooms' table. A buyer holds at most one room per listing.
type DealRoomModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_deal_rooms_listing_buyer"`
	BuyerID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_deal_rooms_listing_buyer;index"`
	SellerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	NDASignedAt    *time.Time
	LOISubmittedAt *time.Time
	Status         string `gorm:"type:varchar(20);not null;default:'open'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Listing *ListingModel `gorm:"foreignKey:ListingID"`
}

// TableName explicitly sets the table name for GORM.
func (DealRoomModel) TableName() string {
	return "deal_rooms"
}

// DealMessageModel mirrors the 'deal_messages' table.
type DealMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DealID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealMessageModel) TableName() string {
	return "deal_messages"
}

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DealID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerID   uuid.UUID       `gorm:"type:uuid;not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Terms     string          `gorm:"type:text"`
	Status    string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
