package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.log(ctx).Debug("Getting profile", slog.String("user_id", userID.String()))

	profile, err := loadProfile(ctx, srv.txManager, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// GetProfileDetail retrieves the profile and its secondary role records in one transaction.
func (srv *profileService) GetProfileDetail(ctx context.Context, userID uuid.UUID) (*usecase.ProfileDetail, error) {
	detail := &usecase.ProfileDetail{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) || errors.Is(err, repository.ErrInvalidProfile) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}
		detail.Profile = profile

		grants, err := repoFactory.RoleGrantRepo().ListByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list role grants")
		}
		detail.Grants = grants

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile detail")
	}

	return detail, nil
}

// UpdateTier records a billing change and announces it.
func (srv *profileService) UpdateTier(ctx context.Context, actor *entity.Identity, userID uuid.UUID, tier entity.Tier) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !tier.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown tier: " + tier.String())
	}

	var previous entity.Tier

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) || errors.Is(err, repository.ErrInvalidProfile) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}
		previous = profile.Tier

		if err := profileRepo.UpdateTier(ctx, userID, tier); err != nil {
			return errors.Wrap(err, "failed to update tier")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update tier")
	}

	srv.log(ctx).Info("Profile tier updated",
		slog.String("user_id", userID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("from", previous.String()),
		slog.String("to", tier.String()),
	)

	if previous != tier {
		publishEvent(ctx, srv.publisher, srv.log(ctx), newDomainEvent(ctx, service.EventTierChanged, userID, map[string]string{
			"from_tier": previous.String(),
			"to_tier":   tier.String(),
			"actor_id":  actor.ID.String(),
		}))
	}

	return nil
}

// GrantRole records a secondary role for the user.
func (srv *profileService) GrantRole(ctx context.Context, actor *entity.Identity, userID uuid.UUID, role entity.Role) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role: " + role.String())
	}

	actorID := actor.ID
	grant := &entity.RoleGrant{
		UserID:    userID,
		Role:      role,
		GrantedBy: &actorID,
		GrantedAt: time.Now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProfileRepo().FindByUserID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) || errors.Is(err, repository.ErrInvalidProfile) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if err := repoFactory.RoleGrantRepo().Grant(ctx, grant); err != nil {
			return errors.Wrap(err, "failed to grant role")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to grant role")
	}

	srv.log(ctx).Info("Role granted",
		slog.String("user_id", userID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("role", role.String()),
	)

	return nil
}
