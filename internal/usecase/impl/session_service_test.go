package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/service"
	mockService "marketplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_ResolveSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		tokens := mockService.NewMockTokenService(t)
		tokens.EXPECT().ValidateAccessToken("good").
			Return(&service.Claims{UserID: userID, Email: "a@example.com"}, nil)

		identity := NewSessionService(tokens, newDiscardLogger()).ResolveSession(ctx, "good")

		require.NotNil(t, identity)
		assert.Equal(t, userID, identity.ID)
		assert.Equal(t, "a@example.com", identity.Email)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokens := mockService.NewMockTokenService(t)
		tokens.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("signature is invalid"))

		assert.Nil(t, NewSessionService(tokens, newDiscardLogger()).ResolveSession(ctx, "bad"))
	})

	t.Run("empty token skips verification", func(t *testing.T) {
		tokens := mockService.NewMockTokenService(t)

		assert.Nil(t, NewSessionService(tokens, newDiscardLogger()).ResolveSession(ctx, ""))
	})
}
