package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. UserID is the auth provider's user id.
// Enum-like columns are stored as plain strings and validated when mapped to the domain.
type ProfileModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role             *string   `gorm:"type:varchar(20)"`
	Roles            []string  `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
	OnboardingStatus string    `gorm:"type:varchar(20);not null;default:'not_started'"`
	PreferredTrack   *string   `gorm:"type:varchar(20);index"`
	Tier             string    `gorm:"type:varchar(20);not null;default:'free'"`
	DisplayName      *string   `gorm:"type:varchar(100)"`
	CompanyName      *string   `gorm:"type:varchar(100)"`
	IsVerified       bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// RoleGrantModel mirrors the 'user_roles' table holding secondary role records.
type RoleGrantModel struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Role      string     `gorm:"type:varchar(20);primaryKey"`
	GrantedBy *uuid.UUID `gorm:"type:uuid"`
	GrantedAt time.Time  `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (RoleGrantModel) TableName() string {
	return "user_roles"
}
