package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// OnboardingUsecase records the onboarding wizard's answers.
type OnboardingUsecase interface {
	// CompleteOnboarding returns an error only for a missing session. Every other failure is
	// reported through the result.
	CompleteOnboarding(ctx context.Context, identity *entity.Identity, input *OnboardingInput) (*OnboardingResult, error)
}

// --- Input DTOs ---

// OnboardingInput is the payload submitted by the onboarding wizard.
type OnboardingInput struct {
	Roles          []string `json:"roles" validate:"required,min=1,max=3,dive,oneof=buyer seller partner"`
	PreferredTrack string   `json:"preferred_track" validate:"required,oneof=all operational digital"`
	DisplayName    *string  `json:"display_name,omitempty" validate:"omitempty,max=100"`
	CompanyName    *string  `json:"company_name,omitempty" validate:"omitempty,max=100"`
}

// --- Output DTOs ---

// OnboardingResult reports the outcome of onboarding as a value.
type OnboardingResult struct {
	Success     bool               `json:"success"`
	Error       string             `json:"error,omitempty"`
	Destination entity.Destination `json:"destination,omitempty"`
}
