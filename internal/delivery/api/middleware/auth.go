package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves sessions and guards routes by section role and plan entitlement.
type AuthMiddleware struct {
	sessions     usecase.SessionUsecase
	access       usecase.AccessUsecase
	entitlements usecase.EntitlementUsecase
	loginPath    string
	logger       *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Sessions     usecase.SessionUsecase
	Access       usecase.AccessUsecase
	Entitlements usecase.EntitlementUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	loginPath := domainerrors.LoginPath
	if params.Config != nil && params.Config.Routes != nil && params.Config.Routes.LoginPath != "" {
		loginPath = params.Config.Routes.LoginPath
	}

	return &AuthMiddleware{
		sessions:     params.Sessions,
		access:       params.Access,
		entitlements: params.Entitlements,
		loginPath:    loginPath,
		logger:       params.Logger,
	}
}

// OptionalAuth attaches the session identity when a valid bearer token is present.
// Anonymous requests pass through untouched.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.resolve(c)

		return next(c)
	}
}

// Authenticate rejects requests without a valid session with 401 and a login redirect.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.resolve(c) == nil {
			return m.unauthenticated(c)
		}

		return next(c)
	}
}

// RequireSection guards an operator section. A denied guard renders a static 403 body.
// It must be used AFTER Authenticate or OptionalAuth.
func (m *AuthMiddleware) RequireSection(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return m.unauthenticated(c)
			}

			decision := m.access.Guard(c.Request().Context(), identity, role)
			if !decision.Granted() {
				return response.Forbidden(c, "ACCESS_DENIED", "Access Denied")
			}

			return next(c)
		}
	}
}

// RequireEntitlement rejects callers whose plan lacks the entitlement with 403 and an upgrade redirect.
// It must be used AFTER Authenticate or OptionalAuth.
func (m *AuthMiddleware) RequireEntitlement(entitlement entity.Entitlement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return m.unauthenticated(c)
			}

			if _, err := m.entitlements.RequireEntitlement(c.Request().Context(), identity, entitlement); err != nil {
				return response.HandleAppError(c, err)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) *entity.Identity {
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		return identity
	}

	token := bearerToken(c.Request())
	if token == "" {
		return nil
	}

	identity := m.sessions.ResolveSession(c.Request().Context(), token)
	if identity == nil {
		return nil
	}
	deliverycontext.SetIdentity(c, identity)

	// Enrich the request-scoped logger for the service layer
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", identity.ID.String()))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

	return identity
}

func (m *AuthMiddleware) unauthenticated(c echo.Context) error {
	return response.FromAppError(c, domainerrors.ErrUnauthenticated.WithRedirect(m.loginPath))
}

func bearerToken(req *http.Request) string {
	header := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

// GetIdentity returns the session identity set by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity := deliverycontext.GetIdentity(c)

	return identity, identity != nil
}

// GetUserID returns the session user id set by the auth middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return uuid.Nil, false
	}

	return identity.ID, true
}
