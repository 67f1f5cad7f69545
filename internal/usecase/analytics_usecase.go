package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// AnalyticsUsecase serves the founder dashboard.
type AnalyticsUsecase interface {
	GetMetrics(ctx context.Context, track entity.Track) (*entity.PlatformMetrics, error)
}
