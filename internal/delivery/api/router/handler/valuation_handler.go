package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ValuationHandlerParams holds dependencies for ValuationHandler, injected by Fx.
type ValuationHandlerParams struct {
	fx.In

	ValuationUC usecase.ValuationUsecase
	Logger      *slog.Logger
}

// ValuationHandler serves valuation estimates
type ValuationHandler struct {
	valuationUC usecase.ValuationUsecase
	logger      *slog.Logger
}

// NewValuationHandler is the constructor for ValuationHandler
func NewValuationHandler(params ValuationHandlerParams) *ValuationHandler {
	return &ValuationHandler{
		valuationUC: params.ValuationUC,
		logger:      params.Logger,
	}
}

// Estimate handles a valuation request
func (h *ValuationHandler) Estimate(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	var req usecase.ValuationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid valuation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	valuation, err := h.valuationUC.Estimate(c.Request().Context(), identity, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, valuation)
}
