package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the profile operations used by the account and admin surfaces.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// GetProfileDetail returns the profile together with its secondary role records.
	GetProfileDetail(ctx context.Context, userID uuid.UUID) (*ProfileDetail, error)

	// UpdateTier applies a billing change and publishes a tier-changed event.
	UpdateTier(ctx context.Context, actor *entity.Identity, userID uuid.UUID, tier entity.Tier) error

	// GrantRole records a secondary role for the user.
	GrantRole(ctx context.Context, actor *entity.Identity, userID uuid.UUID, role entity.Role) error
}

// ProfileDetail is a profile with the roles granted to it by operators.
type ProfileDetail struct {
	Profile *entity.Profile
	Grants  []*entity.RoleGrant
}
