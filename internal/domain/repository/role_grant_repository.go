package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleGrantRepository stores secondary role records.
type RoleGrantRepository interface {
	// HasRole reports whether a grant exists for the user and role.
	HasRole(ctx context.Context, userID uuid.UUID, role entity.Role) (bool, error)

	// ListByUserID returns every grant held by the user.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RoleGrant, error)

	// Grant records a role for the user. Granting an existing role is a no-op.
	Grant(ctx context.Context, grant *entity.RoleGrant) error
}
