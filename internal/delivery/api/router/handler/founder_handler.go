package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FounderHandlerParams holds dependencies for FounderHandler, injected by Fx.
type FounderHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// FounderHandler serves the founder dashboard
type FounderHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewFounderHandler is the constructor for FounderHandler
func NewFounderHandler(params FounderHandlerParams) *FounderHandler {
	return &FounderHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// GetMetrics handles the platform metrics snapshot, optionally narrowed with ?track=
func (h *FounderHandler) GetMetrics(c echo.Context) error {
	track := entity.ParseTrack(strings.ToLower(strings.TrimSpace(c.QueryParam("track"))))

	metrics, err := h.analyticsUC.GetMetrics(c.Request().Context(), track)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, metrics)
}
