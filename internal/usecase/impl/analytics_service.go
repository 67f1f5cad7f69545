package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMetrics gathers the founder dashboard counters. The reads are independent and run concurrently.
func (srv *analyticsService) GetMetrics(ctx context.Context, track entity.Track) (*entity.PlatformMetrics, error) {
	if !track.IsValid() {
		track = entity.TrackAll
	}

	metrics := &entity.PlatformMetrics{Track: track}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.txManager.Execute(gctx, func(repoFactory repository.RepositoryFactory) error {
			byRole, err := repoFactory.ProfileRepo().CountByRole(gctx, track)
			if err != nil {
				return errors.Wrap(err, "failed to count profiles by role")
			}
			metrics.ProfilesByRole = byRole

			return nil
		})
	})

	g.Go(func() error {
		return srv.txManager.Execute(gctx, func(repoFactory repository.RepositoryFactory) error {
			byTier, err := repoFactory.ProfileRepo().CountByTier(gctx, track)
			if err != nil {
				return errors.Wrap(err, "failed to count profiles by tier")
			}
			metrics.ProfilesByTier = byTier

			return nil
		})
	})

	g.Go(func() error {
		return srv.txManager.Execute(gctx, func(repoFactory repository.RepositoryFactory) error {
			active, err := repoFactory.ListingRepo().CountActive(gctx, track)
			if err != nil {
				return errors.Wrap(err, "failed to count active listings")
			}
			metrics.ActiveListings = active

			return nil
		})
	})

	g.Go(func() error {
		return srv.txManager.Execute(gctx, func(repoFactory repository.RepositoryFactory) error {
			stats, err := repoFactory.DealRepo().Stats(gctx, track)
			if err != nil {
				return errors.Wrap(err, "failed to aggregate deal stats")
			}
			metrics.NDAsSigned = stats.NDAsSigned
			metrics.OffersSubmitted = stats.OffersSubmitted

			return nil
		})
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to gather platform metrics", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get platform metrics")
	}

	return metrics, nil
}
