package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MeHandlerParams holds dependencies for MeHandler, injected by Fx.
type MeHandlerParams struct {
	fx.In

	RoutingUC     usecase.RoutingUsecase
	ProfileUC     usecase.ProfileUsecase
	EntitlementUC usecase.EntitlementUsecase
	AccessUC      usecase.AccessUsecase
	Logger        *slog.Logger
}

// MeHandler serves the signed-in user's own profile, landing route and plan
type MeHandler struct {
	routingUC     usecase.RoutingUsecase
	profileUC     usecase.ProfileUsecase
	entitlementUC usecase.EntitlementUsecase
	accessUC      usecase.AccessUsecase
	logger        *slog.Logger
}

// NewMeHandler is the constructor for MeHandler
func NewMeHandler(params MeHandlerParams) *MeHandler {
	return &MeHandler{
		routingUC:     params.RoutingUC,
		profileUC:     params.ProfileUC,
		entitlementUC: params.EntitlementUC,
		accessUC:      params.AccessUC,
		logger:        params.Logger,
	}
}

// DestinationResponse is where the client should navigate after sign-in
type DestinationResponse struct {
	Destination entity.Destination `json:"destination"`
}

// SectionAccessResponse lists the operator sections the caller may open
type SectionAccessResponse struct {
	Admin   bool `json:"admin"`
	Founder bool `json:"founder"`
}

// GetProfile returns the caller's profile
func (h *MeHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// GetDestination returns the route the caller lands on. Store failures route to onboarding.
func (h *MeHandler) GetDestination(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	destination := h.routingUC.DestinationForUser(c.Request().Context(), userID)

	return response.Success(c, http.StatusOK, DestinationResponse{Destination: destination})
}

// CheckEntitlement reports whether the caller's plan includes the named entitlement
func (h *MeHandler) CheckEntitlement(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	result := h.entitlementUC.CheckEntitlement(c.Request().Context(), userID, entity.Entitlement(c.Param("name")))

	return response.Success(c, http.StatusOK, result)
}

// GetPlan lists the entitlements of the caller's tier
func (h *MeHandler) GetPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errUnauthenticated(c)
	}

	return response.Success(c, http.StatusOK, h.entitlementUC.PlanSummary(c.Request().Context(), userID))
}

// GetSectionAccess reports whether the caller may open the admin and founder sections
func (h *MeHandler) GetSectionAccess(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	ctx := c.Request().Context()

	return response.Success(c, http.StatusOK, SectionAccessResponse{
		Admin:   h.accessUC.IsAdmin(ctx, identity),
		Founder: h.accessUC.IsFounder(ctx, identity),
	})
}
