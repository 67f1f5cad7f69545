package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// EntitlementUsecase decides which tier-gated capabilities a user holds.
type EntitlementUsecase interface {
	// CurrentTier returns the user's tier; a missing profile or store failure counts as free.
	CurrentTier(ctx context.Context, userID uuid.UUID) entity.Tier

	// CheckEntitlement tests the entitlement against the user's current tier.
	CheckEntitlement(ctx context.Context, userID uuid.UUID, entitlement entity.Entitlement) entity.EntitlementResult

	// RequireEntitlement fails with ErrUnauthenticated when identity is nil and with an
	// *EntitlementDeniedError when the check denies access.
	RequireEntitlement(ctx context.Context, identity *entity.Identity, entitlement entity.Entitlement) (entity.EntitlementResult, error)

	// PlanSummary lists the entitlements granted by the user's current tier.
	PlanSummary(ctx context.Context, userID uuid.UUID) *PlanSummary
}

// PlanSummary describes the caller's tier and what it unlocks.
type PlanSummary struct {
	Tier         entity.Tier          `json:"tier"`
	Entitlements []entity.Entitlement `json:"entitlements"`
}
