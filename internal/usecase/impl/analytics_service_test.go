package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_GetMetrics(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)

	repos.profiles.EXPECT().CountByRole(mock.Anything, entity.TrackDigital).
		Return(map[entity.Role]int64{entity.RoleBuyer: 7, entity.RoleSeller: 3}, nil)
	repos.profiles.EXPECT().CountByTier(mock.Anything, entity.TrackDigital).
		Return(map[entity.Tier]int64{entity.TierFree: 8, entity.TierPro: 2}, nil)
	repos.listings.EXPECT().CountActive(mock.Anything, entity.TrackDigital).Return(int64(4), nil)
	repos.deals.EXPECT().Stats(mock.Anything, entity.TrackDigital).
		Return(&entity.DealStats{NDAsSigned: 5, OffersSubmitted: 2}, nil)

	srv := NewAnalyticsService(txManager, newDiscardLogger())
	metrics, err := srv.GetMetrics(context.Background(), entity.TrackDigital)

	require.NoError(t, err)
	assert.Equal(t, entity.TrackDigital, metrics.Track)
	assert.Equal(t, int64(7), metrics.ProfilesByRole[entity.RoleBuyer])
	assert.Equal(t, int64(2), metrics.ProfilesByTier[entity.TierPro])
	assert.Equal(t, int64(4), metrics.ActiveListings)
	assert.Equal(t, int64(5), metrics.NDAsSigned)
	assert.Equal(t, int64(2), metrics.OffersSubmitted)
}

func TestAnalyticsService_GetMetrics_UnknownTrackMeansAll(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)

	repos.profiles.EXPECT().CountByRole(mock.Anything, entity.TrackAll).Return(map[entity.Role]int64{}, nil)
	repos.profiles.EXPECT().CountByTier(mock.Anything, entity.TrackAll).Return(map[entity.Tier]int64{}, nil)
	repos.listings.EXPECT().CountActive(mock.Anything, entity.TrackAll).Return(int64(0), nil)
	repos.deals.EXPECT().Stats(mock.Anything, entity.TrackAll).Return(&entity.DealStats{}, nil)

	srv := NewAnalyticsService(txManager, newDiscardLogger())
	metrics, err := srv.GetMetrics(context.Background(), entity.Track("mars"))

	require.NoError(t, err)
	assert.Equal(t, entity.TrackAll, metrics.Track)
}

func TestAnalyticsService_GetMetrics_PropagatesFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)

	repos.profiles.EXPECT().CountByRole(mock.Anything, entity.TrackAll).Return(nil, errors.New("boom")).Maybe()
	repos.profiles.EXPECT().CountByTier(mock.Anything, entity.TrackAll).Return(map[entity.Tier]int64{}, nil).Maybe()
	repos.listings.EXPECT().CountActive(mock.Anything, entity.TrackAll).Return(int64(0), nil).Maybe()
	repos.deals.EXPECT().Stats(mock.Anything, entity.TrackAll).Return(&entity.DealStats{}, nil).Maybe()

	srv := NewAnalyticsService(txManager, newDiscardLogger())
	_, err := srv.GetMetrics(context.Background(), entity.TrackAll)

	require.Error(t, err)
}
