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

// OnboardingHandlerParams holds dependencies for OnboardingHandler, injected by Fx.
type OnboardingHandlerParams struct {
	fx.In

	OnboardingUC usecase.OnboardingUsecase
	Logger       *slog.Logger
}

// OnboardingHandler submits the onboarding wizard
type OnboardingHandler struct {
	onboardingUC usecase.OnboardingUsecase
	logger       *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler
func NewOnboardingHandler(params OnboardingHandlerParams) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUC: params.OnboardingUC,
		logger:       params.Logger,
	}
}

// CompleteOnboarding records the wizard's answers. The outcome is always a result value:
// 200 with success=true, or 422 with success=false and the reason.
func (h *OnboardingHandler) CompleteOnboarding(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	var req usecase.OnboardingInput
	if err := c.Bind(&req); err != nil {
		return response.Success(c, http.StatusUnprocessableEntity, &usecase.OnboardingResult{
			Error: "Invalid onboarding input",
		})
	}

	result, err := h.onboardingUC.CompleteOnboarding(c.Request().Context(), identity, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !result.Success {
		return response.Success(c, http.StatusUnprocessableEntity, result)
	}

	return response.Success(c, http.StatusOK, result)
}
