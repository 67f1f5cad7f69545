package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// routingService implements the RoutingUsecase interface.
type routingService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRoutingService is the constructor for routingService.
func NewRoutingService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.RoutingUsecase {
	return &routingService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *routingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveDestination computes the landing route from the profile alone.
func (srv *routingService) ResolveDestination(profile *entity.Profile) entity.Destination {
	return entity.ResolveDestination(profile)
}

// DestinationForUser loads the profile and resolves its destination.
func (srv *routingService) DestinationForUser(ctx context.Context, userID uuid.UUID) entity.Destination {
	profile, err := loadProfile(ctx, srv.txManager, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Failed to load profile for routing, sending user to onboarding",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}

		return entity.DestinationOnboarding
	}

	return entity.ResolveDestination(profile)
}

// loadProfile reads a profile in its own transaction. An invalid stored record reads as missing.
func loadProfile(ctx context.Context, txManager repository.TransactionManager, userID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrInvalidProfile) {
				return repository.ErrProfileNotFound
			}

			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}
