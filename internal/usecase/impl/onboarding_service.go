package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const onboardingSaveFailed = "Could not save your onboarding answers, please try again"

// onboardingService implements the OnboardingUsecase interface.
type onboardingService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(params OnboardingServiceParams) usecase.OnboardingUsecase {
	return &onboardingService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    params.Logger,
	}
}

func (srv *onboardingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteOnboarding validates the wizard answers and upserts the profile.
func (srv *onboardingService) CompleteOnboarding(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.OnboardingInput,
) (*usecase.OnboardingResult, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input == nil {
		return &usecase.OnboardingResult{Error: "onboarding answers are required"}, nil
	}

	if err := srv.validate.Struct(input); err != nil {
		srv.log(ctx).Debug("Onboarding input rejected",
			slog.String("user_id", identity.ID.String()),
			slog.Any("error", err),
		)

		return &usecase.OnboardingResult{Error: describeValidationError(err)}, nil
	}

	profile := buildOnboardedProfile(identity, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().UpsertOnboarding(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to upsert profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to complete onboarding",
			slog.String("user_id", identity.ID.String()),
			slog.Any("error", err),
		)

		return &usecase.OnboardingResult{Error: onboardingSaveFailed}, nil
	}

	srv.log(ctx).Info("Onboarding completed",
		slog.String("user_id", identity.ID.String()),
		slog.String("role", profile.PrimaryRole().String()),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), newDomainEvent(ctx, service.EventOnboardingCompleted, identity.ID, map[string]string{
		"role":            profile.PrimaryRole().String(),
		"roles":           strings.Join(profile.Roles.ToStrings(), ","),
		"preferred_track": input.PreferredTrack,
	}))

	return &usecase.OnboardingResult{
		Success:     true,
		Destination: entity.ResolveDestination(profile),
	}, nil
}

// buildOnboardedProfile maps validated answers onto a completed profile. Duplicate roles are
// collapsed keeping the first occurrence; the first role becomes the primary one.
func buildOnboardedProfile(identity *entity.Identity, input *usecase.OnboardingInput) *entity.Profile {
	roles := make(entity.Roles, 0, len(input.Roles))
	for _, raw := range input.Roles {
		role, ok := entity.ParseRole(raw)
		if !ok || !role.IsSelfAssignable() || roles.Contains(role) {
			continue
		}
		roles = append(roles, role)
	}

	primary := entity.RoleBuyer
	if first, ok := roles.First(); ok {
		primary = first
	}
	track := entity.ParseTrack(input.PreferredTrack)
	now := time.Now().UTC()

	return &entity.Profile{
		UserID:           identity.ID,
		Role:             &primary,
		Roles:            roles,
		OnboardingStatus: entity.OnboardingCompleted,
		PreferredTrack:   &track,
		Tier:             entity.TierFree,
		DisplayName:      trimmedOrNil(input.DisplayName),
		CompanyName:      trimmedOrNil(input.CompanyName),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// describeValidationError renders validator errors as a single user-facing sentence.
func describeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid onboarding answers"
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}

	return "invalid onboarding answers: " + strings.Join(parts, "; ")
}
