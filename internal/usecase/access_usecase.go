package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// AccessUsecase guards the operator sections.
type AccessUsecase interface {
	// Guard grants access when there is a session and the profile's primary role matches
	// or a secondary role record exists.
	Guard(ctx context.Context, identity *entity.Identity, role entity.Role) entity.GuardDecision

	IsAdmin(ctx context.Context, identity *entity.Identity) bool
	IsFounder(ctx context.Context, identity *entity.Identity) bool
}
