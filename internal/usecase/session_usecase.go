package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// SessionUsecase resolves the identity behind a bearer access token.
type SessionUsecase interface {
	// ResolveSession returns nil when the token is empty or fails verification.
	ResolveSession(ctx context.Context, accessToken string) *entity.Identity
}
