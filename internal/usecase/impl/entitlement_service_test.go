package impl

import (
	"context"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEntitlementService(t *testing.T, txManager repository.TransactionManager, cfg *config.Config) *entitlementService {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	srv, err := NewEntitlementService(EntitlementServiceParams{
		TxManager: txManager,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	return srv.(*entitlementService)
}

func TestEntitlementService_CheckEntitlement(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name         string
		tier         entity.Tier
		entitlement  entity.Entitlement
		wantAccess   bool
		wantRequired *entity.Tier
	}{
		{"free browses listings", entity.TierFree, entity.EntitlementBrowseListings, true, tierPtr(entity.TierFree)},
		{"free lacks nda access", entity.TierFree, entity.EntitlementNDAAccess, false, tierPtr(entity.TierPro)},
		{"pro signs ndas", entity.TierPro, entity.EntitlementNDAAccess, true, tierPtr(entity.TierPro)},
		{"pro lacks buyer matching", entity.TierPro, entity.EntitlementBuyerMatching, false, tierPtr(entity.TierElite)},
		{"elite gets everything", entity.TierElite, entity.EntitlementPrioritySupport, true, tierPtr(entity.TierElite)},
		{"unknown entitlement", entity.TierElite, entity.Entitlement("teleport"), false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			repos := newTestRepos(t)
			expectTx(txManager, repos)
			repos.profiles.EXPECT().FindByUserID(ctx, userID).
				Return(onboardedProfile(userID, entity.RoleBuyer, tt.tier), nil)

			srv := createTestEntitlementService(t, txManager, nil)
			result := srv.CheckEntitlement(ctx, userID, tt.entitlement)

			assert.Equal(t, tt.wantAccess, result.HasAccess)
			assert.Equal(t, tt.tier, result.CurrentTier)
			assert.Equal(t, tt.wantRequired, result.RequiredTier)
		})
	}
}

func TestEntitlementService_CurrentTier_FallsBackToFree(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("missing profile", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		repos := newTestRepos(t)
		expectTx(txManager, repos)
		repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

		srv := createTestEntitlementService(t, txManager, nil)

		assert.Equal(t, entity.TierFree, srv.CurrentTier(ctx, userID))
	})

	t.Run("invalid stored profile", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		repos := newTestRepos(t)
		expectTx(txManager, repos)
		repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrInvalidProfile)

		srv := createTestEntitlementService(t, txManager, nil)

		assert.Equal(t, entity.TierFree, srv.CurrentTier(ctx, userID))
	})

	t.Run("store failure", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			Return(errors.New("timeout"))

		srv := createTestEntitlementService(t, txManager, nil)

		assert.Equal(t, entity.TierFree, srv.CurrentTier(ctx, userID))
	})
}

func TestEntitlementService_RequireEntitlement(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no session", func(t *testing.T) {
		srv := createTestEntitlementService(t, mockRepo.NewMockTransactionManager(t), nil)

		_, err := srv.RequireEntitlement(ctx, nil, entity.EntitlementDealRoom)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

		var redirector domainerrors.Redirector
		require.ErrorAs(t, err, &redirector)
		assert.Equal(t, "/login", redirector.RedirectTo())
	})

	t.Run("denied carries upgrade path", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		repos := newTestRepos(t)
		expectTx(txManager, repos)
		repos.profiles.EXPECT().FindByUserID(ctx, userID).
			Return(onboardedProfile(userID, entity.RoleBuyer, entity.TierFree), nil)

		srv := createTestEntitlementService(t, txManager, &config.Config{
			Routes: &config.RoutesConfig{UpgradePath: "/billing"},
		})

		result, err := srv.RequireEntitlement(ctx, &entity.Identity{ID: userID}, entity.EntitlementDealRoom)

		require.Error(t, err)
		assert.False(t, result.HasAccess)
		assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)

		var denied *domainerrors.EntitlementDeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, 403, denied.HTTPCode())
		assert.Equal(t, "/billing?tier=pro", denied.RedirectTo())
	})

	t.Run("granted", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		repos := newTestRepos(t)
		expectTx(txManager, repos)
		repos.profiles.EXPECT().FindByUserID(ctx, userID).
			Return(onboardedProfile(userID, entity.RoleBuyer, entity.TierElite), nil)

		srv := createTestEntitlementService(t, txManager, nil)

		result, err := srv.RequireEntitlement(ctx, &entity.Identity{ID: userID}, entity.EntitlementAICompare)

		require.NoError(t, err)
		assert.True(t, result.HasAccess)
	})
}

func TestEntitlementService_PlanSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)
	repos.profiles.EXPECT().FindByUserID(ctx, userID).
		Return(onboardedProfile(userID, entity.RoleBuyer, entity.TierFree), nil)

	srv := createTestEntitlementService(t, txManager, nil)
	summary := srv.PlanSummary(ctx, userID)

	assert.Equal(t, entity.TierFree, summary.Tier)
	assert.ElementsMatch(t, []entity.Entitlement{
		entity.EntitlementBrowseListings,
		entity.EntitlementBasicValuation,
	}, summary.Entitlements)
}

func TestNewPlanCatalog(t *testing.T) {
	t.Run("defaults without override", func(t *testing.T) {
		catalog, err := NewPlanCatalog(&config.Config{})

		require.NoError(t, err)
		assert.True(t, catalog.Grants(entity.TierPro, entity.EntitlementDealRoom))
	})

	t.Run("override replaces the table", func(t *testing.T) {
		catalog, err := NewPlanCatalog(&config.Config{Plans: map[string][]string{
			"free": {"browse_listings", "deal_room"},
			"pro":  {"browse_listings", "deal_room", "nda_access"},
		}})

		require.NoError(t, err)
		assert.True(t, catalog.Grants(entity.TierFree, entity.EntitlementDealRoom))
		assert.False(t, catalog.Grants(entity.TierElite, entity.EntitlementDealRoom))

		required, ok := catalog.MinimumTier(entity.EntitlementNDAAccess)
		require.True(t, ok)
		assert.Equal(t, entity.TierPro, required)
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, err := NewPlanCatalog(&config.Config{Plans: map[string][]string{"platinum": {"browse_listings"}}})

		require.Error(t, err)
	})

	t.Run("unknown entitlement", func(t *testing.T) {
		_, err := NewPlanCatalog(&config.Config{Plans: map[string][]string{"free": {"teleport"}}})

		require.Error(t, err)
	})
}

func tierPtr(t entity.Tier) *entity.Tier {
	return &t
}
