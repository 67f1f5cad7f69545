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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// AdminHandler serves operator actions on user profiles
type AdminHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateTierRequest represents the request body for a billing tier change
type UpdateTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free pro elite"`
}

// GrantRoleRequest represents the request body for granting a secondary role
type GrantRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=buyer seller partner admin founder"`
}

// GetUserProfile handles retrieving any user's profile with its granted roles
func (h *AdminHandler) GetUserProfile(c echo.Context) error {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	detail, err := h.profileUC.GetProfileDetail(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileDetailResponse(detail))
}

// UpdateTier handles a billing tier change
func (h *AdminHandler) UpdateTier(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateTierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tier input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.UpdateTier(c.Request().Context(), actor, userID, entity.Tier(req.Tier)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Tier updated successfully"})
}

// GrantRole handles granting a secondary role
func (h *AdminHandler) GrantRole(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req GrantRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.GrantRole(c.Request().Context(), actor, userID, entity.Role(req.Role)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Role granted successfully"})
}
