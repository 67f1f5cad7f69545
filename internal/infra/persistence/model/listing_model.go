package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingModel mirrors the 'listings' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type ListingModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(200);not null"`
	Summary       string          `gorm:"type:text"`
	Industry      string          `gorm:"type:varchar(100);index"`
	Track         string          `gorm:"type:varchar(20);not null;index"`
	AskingPrice   decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	AnnualRevenue decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	AnnualProfit  decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	Location      string          `gorm:"type:varchar(200)"`
	Status        string          `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
