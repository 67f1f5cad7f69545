// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RoutingUsecase computes where a signed-in user lands.
type RoutingUsecase interface {
	// ResolveDestination is a pure function of the profile's role, roles, onboarding status and track.
	ResolveDestination(profile *entity.Profile) entity.Destination

	// DestinationForUser loads the profile first. A missing profile or a store failure routes to onboarding.
	DestinationForUser(ctx context.Context, userID uuid.UUID) entity.Destination
}
