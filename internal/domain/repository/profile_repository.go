// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProfileNotFound is returned when no profile exists for a user.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidProfile is returned when a stored profile fails boundary validation.
	ErrInvalidProfile = errors.New("stored profile is invalid")
)

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByUserID retrieves the profile keyed by the identity id.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpsertOnboarding inserts the profile or, when one already exists for the user, overwrites the
	// onboarding-owned fields (role, roles, preferred track, names, onboarding status).
	// Tier and verification flag are only written on insert.
	UpsertOnboarding(ctx context.Context, profile *entity.Profile) error

	// UpdateTier changes the subscription tier of an existing profile.
	UpdateTier(ctx context.Context, userID uuid.UUID, tier entity.Tier) error

	// CountByRole counts profiles by primary role, restricted to a preferred track unless TrackAll.
	CountByRole(ctx context.Context, track entity.Track) (map[entity.Role]int64, error)

	// CountByTier counts profiles by tier, restricted to a preferred track unless TrackAll.
	CountByTier(ctx context.Context, track entity.Track) (map[entity.Tier]int64, error)
}
