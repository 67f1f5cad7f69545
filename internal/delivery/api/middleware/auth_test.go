package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	sessions     *mockUsecase.MockSessionUsecase
	access       *mockUsecase.MockAccessUsecase
	entitlements *mockUsecase.MockEntitlementUsecase
}

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, authMocks) {
	t.Helper()

	mocks := authMocks{
		sessions:     mockUsecase.NewMockSessionUsecase(t),
		access:       mockUsecase.NewMockAccessUsecase(t),
		entitlements: mockUsecase.NewMockEntitlementUsecase(t),
	}

	cfg := &config.Config{Routes: &config.RoutesConfig{LoginPath: "/signin"}}

	return NewAuthMiddleware(AuthMiddlewareParams{
		Sessions:     mocks.sessions,
		Access:       mocks.access,
		Entitlements: mocks.entitlements,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), mocks
}

func serve(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, *entity.Identity) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Identity
	err := mw(func(c echo.Context) error {
		seen = deliverycontext.GetIdentity(c)

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, seen
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "a@example.com"}

	t.Run("valid token", func(t *testing.T) {
		m, mocks := newTestAuthMiddleware(t)
		mocks.sessions.EXPECT().ResolveSession(mock.Anything, "good").Return(identity)

		rec, seen := serve(t, m.Authenticate, "Bearer good")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, identity, seen)
	})

	t.Run("missing header", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)

		rec, _ := serve(t, m.Authenticate, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "UNAUTHENTICATED", info.Code)
		assert.Equal(t, "/signin", info.Redirect)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)

		rec, _ := serve(t, m.Authenticate, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		m, mocks := newTestAuthMiddleware(t)
		mocks.sessions.EXPECT().ResolveSession(mock.Anything, "expired").Return(nil)

		rec, _ := serve(t, m.Authenticate, "Bearer expired")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	m, mocks := newTestAuthMiddleware(t)
	mocks.sessions.EXPECT().ResolveSession(mock.Anything, "bad").Return(nil)

	rec, seen := serve(t, m.OptionalAuth, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, seen)

	rec, seen = serve(t, m.OptionalAuth, "Bearer bad")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthMiddleware_RequireSection(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}

	tests := []struct {
		name       string
		resolved   *entity.Identity
		decision   entity.GuardState
		wantStatus int
		wantCode   string
	}{
		{"granted", identity, entity.GuardGranted, http.StatusNoContent, ""},
		{"denied", identity, entity.GuardDenied, http.StatusForbidden, "ACCESS_DENIED"},
		{"no session", nil, "", http.StatusUnauthorized, "UNAUTHENTICATED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mocks := newTestAuthMiddleware(t)
			mocks.sessions.EXPECT().ResolveSession(mock.Anything, "token").Return(tt.resolved)
			if tt.resolved != nil {
				mocks.access.EXPECT().Guard(mock.Anything, identity, entity.RoleAdmin).
					Return(entity.GuardDecision{State: tt.decision, Role: entity.RoleAdmin})
			}

			chain := func(next echo.HandlerFunc) echo.HandlerFunc {
				return m.OptionalAuth(m.RequireSection(entity.RoleAdmin)(next))
			}
			rec, _ := serve(t, chain, "Bearer token")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestAuthMiddleware_RequireEntitlement(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}
	pro := entity.TierPro

	t.Run("denied carries upgrade redirect", func(t *testing.T) {
		m, mocks := newTestAuthMiddleware(t)
		mocks.sessions.EXPECT().ResolveSession(mock.Anything, "token").Return(identity)
		denied := entity.EntitlementResult{
			Entitlement:  entity.EntitlementDealRoom,
			RequiredTier: &pro,
			CurrentTier:  entity.TierFree,
		}
		mocks.entitlements.EXPECT().RequireEntitlement(mock.Anything, identity, entity.EntitlementDealRoom).
			Return(denied, domainerrors.NewEntitlementDeniedError(denied, "/pricing"))

		chain := func(next echo.HandlerFunc) echo.HandlerFunc {
			return m.Authenticate(m.RequireEntitlement(entity.EntitlementDealRoom)(next))
		}
		rec, _ := serve(t, chain, "Bearer token")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "ENTITLEMENT_REQUIRED", info.Code)
		assert.Equal(t, "/pricing?tier=pro", info.Redirect)
		assert.Nil(t, info.Details)
	})

	t.Run("granted", func(t *testing.T) {
		m, mocks := newTestAuthMiddleware(t)
		mocks.sessions.EXPECT().ResolveSession(mock.Anything, "token").Return(identity)
		mocks.entitlements.EXPECT().RequireEntitlement(mock.Anything, identity, entity.EntitlementDealRoom).
			Return(entity.EntitlementResult{HasAccess: true}, nil)

		chain := func(next echo.HandlerFunc) echo.HandlerFunc {
			return m.Authenticate(m.RequireEntitlement(entity.EntitlementDealRoom)(next))
		}
		rec, seen := serve(t, chain, "Bearer token")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, identity, seen)
	})

	t.Run("no session", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)

		rec, _ := serve(t, m.RequireEntitlement(entity.EntitlementDealRoom), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
