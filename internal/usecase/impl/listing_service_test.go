package impl

import (
	"context"
	"math"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/infra/persistence/memory"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestListingService(t *testing.T) (usecase.ListingUsecase, *mockRepo.MockTransactionManager, *mockService.MockQRCodeService) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	qr := mockService.NewMockQRCodeService(t)

	return NewListingService(ListingServiceParams{
		TxManager: txManager,
		QRService: qr,
		Logger:    newDiscardLogger(),
	}), txManager, qr
}

func validListingInput() *usecase.CreateListingInput {
	return &usecase.CreateListingInput{
		Title:         "Profitable Shopify store",
		Summary:       "Pet supplies, 40% margins",
		Industry:      "Ecommerce",
		Track:         "digital",
		AskingPrice:   decimal.NewFromInt(250000),
		AnnualRevenue: decimal.NewFromInt(400000),
		AnnualProfit:  decimal.NewFromInt(90000),
		Publish:       true,
	}
}

func TestListingService_SearchListings_SanitisesFilter(t *testing.T) {
	ctx := context.Background()
	srv, txManager, _ := createTestListingService(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)

	listing := &entity.Listing{ID: uuid.New(), Status: entity.ListingActive}
	repos.listings.EXPECT().
		Search(ctx, mock.MatchedBy(func(f entity.ListingFilter) bool {
			return f.Query == `50\% off` &&
				f.Page == 1 &&
				f.PageSize == 50 &&
				f.Sort == entity.SortNewest &&
				f.Track == entity.TrackAll &&
				f.MinPrice != nil && f.MinPrice.Equal(decimal.NewFromInt(100)) &&
				f.MaxPrice != nil && f.MaxPrice.Equal(decimal.NewFromInt(500)) &&
				len(f.Statuses) == 1 && f.Statuses[0] == entity.ListingActive
		})).
		Return([]*entity.Listing{listing}, int64(1), nil)

	page, err := srv.SearchListings(ctx, nil, &usecase.ListingSearchParams{
		Query:    "  50% off ",
		Track:    "crypto",
		MinPrice: "500",
		MaxPrice: "100",
		Sort:     "random()",
		Page:     -3,
		PageSize: 1000,
		Mine:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.PageSize)
	assert.Len(t, page.Items, 1)
}

func TestListingService_SearchListings_HugePageIsClamped(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	srv := NewListingService(ListingServiceParams{
		TxManager: memory.NewTransactionManager(store),
		QRService: mockService.NewMockQRCodeService(t),
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, store.ListingRepo().Create(ctx, &entity.Listing{
		SellerID: uuid.New(), Title: "Bakery", Track: entity.TrackOperational,
		AskingPrice: decimal.NewFromInt(80000), Status: entity.ListingActive,
	}))

	filter := (&usecase.ListingSearchParams{Page: math.MaxInt64}).Sanitize(nil)
	assert.GreaterOrEqual(t, filter.Offset(), 0)
	assert.LessOrEqual(t, filter.Offset(), math.MaxInt32)

	var (
		page *usecase.ListingPage
		err  error
	)
	require.NotPanics(t, func() {
		page, err = srv.SearchListings(ctx, nil, &usecase.ListingSearchParams{Page: math.MaxInt64})
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Empty(t, page.Items)
	assert.Equal(t, filter.Page, page.Page)
}

func TestListingService_SearchListings_EmptyPageHasItems(t *testing.T) {
	ctx := context.Background()
	srv, txManager, _ := createTestListingService(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)
	repos.listings.EXPECT().Search(ctx, mock.Anything).Return(nil, int64(0), nil)

	page, err := srv.SearchListings(ctx, nil, nil)

	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 20, page.PageSize)
}

func TestListingService_GetListing_HidesInactiveFromOthers(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()
	draft := &entity.Listing{ID: uuid.New(), SellerID: sellerID, Status: entity.ListingDraft}

	srv, txManager, _ := createTestListingService(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)
	repos.listings.EXPECT().FindByID(ctx, draft.ID).Return(draft, nil)

	_, err := srv.GetListing(ctx, &entity.Identity{ID: uuid.New()}, draft.ID)
	require.ErrorIs(t, err, domainerrors.ErrListingNotFound)

	_, err = srv.GetListing(ctx, nil, draft.ID)
	require.ErrorIs(t, err, domainerrors.ErrListingNotFound)

	got, err := srv.GetListing(ctx, &entity.Identity{ID: sellerID}, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}

func TestListingService_GetListing_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	srv, txManager, _ := createTestListingService(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)
	repos.listings.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrListingNotFound)

	_, err := srv.GetListing(ctx, nil, id)

	require.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_CreateListing(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()
	identity := &entity.Identity{ID: sellerID}

	t.Run("seller publishes", func(t *testing.T) {
		srv, txManager, _ := createTestListingService(t)
		repos := newTestRepos(t)
		expectTx(txManager, repos)
		repos.profiles.EXPECT().FindByUserID(ctx, sellerID).
			Return(onboardedProfile(sellerID, entity.RoleSeller, entity.TierFree), nil)
		repos.listings.EXPECT().
			Create(ctx, mock.MatchedBy(func(l *entity.Listing) bool {
				return l.SellerID == sellerID && l.Industry == "ecommerce" && l.Track == entity.TrackDigital
			})).
			RunAndReturn(func(_ context.Context, l *entity.Listing) error {
				l.ID = uuid.New()

				return nil
			})

		listing, err := srv.CreateListing(ctx, identity, validListingInput())

		require.NoError(t, err)
		assert.Equal(t, entity.ListingActive, listing.Status)
		assert.NotEqual(t, uuid.Nil, listing.ID)
	})

	t.Run("secondary seller role counts", func(t *testing.T) {
		srv, txManager, _ := createTestListingService(t)
		repos := newTestRepos(t)
		expectTx(txManager, repos)
		profile := onboardedProfile(sellerID, entity.RoleBuyer, entity.TierFree)
		profile.Roles = entity.Roles{entity.RoleBuyer, entity.RoleSeller}
		repos.profiles.EXPECT().FindByUserID(ctx, sellerID).Return(profile, nil)
		repos.listings.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

		input := validListingInput()
		input.Publish = false
		listing, err := srv.CreateListing(ctx, identity, input)

		require.NoError(t, err)
		assert.Equal(t, entity.ListingDraft, listing.Status)
	})

	t.Run("buyers cannot list", func(t *testing.T) {
		srv, txManager, _ := createTestListingService(t)
		repos := newTestRepos(t)
		expectTx(txManager, repos)
		repos.profiles.EXPECT().FindByUserID(ctx, sellerID).
			Return(onboardedProfile(sellerID, entity.RoleBuyer, entity.TierElite), nil)

		_, err := srv.CreateListing(ctx, identity, validListingInput())

		require.ErrorIs(t, err, domainerrors.ErrSellerRoleRequired)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		srv, _, _ := createTestListingService(t)
		input := validListingInput()
		input.AskingPrice = decimal.Zero

		_, err := srv.CreateListing(ctx, identity, input)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects track all", func(t *testing.T) {
		srv, _, _ := createTestListingService(t)
		input := validListingInput()
		input.Track = "all"

		_, err := srv.CreateListing(ctx, identity, input)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("no session", func(t *testing.T) {
		srv, _, _ := createTestListingService(t)

		_, err := srv.CreateListing(ctx, nil, validListingInput())

		require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestListingService_ListingShareQR(t *testing.T) {
	ctx := context.Background()
	active := &entity.Listing{ID: uuid.New(), Status: entity.ListingActive}
	sold := &entity.Listing{ID: uuid.New(), Status: entity.ListingSold}

	srv, txManager, qr := createTestListingService(t)
	repos := newTestRepos(t)
	expectTx(txManager, repos)
	repos.listings.EXPECT().FindByID(ctx, active.ID).Return(active, nil)
	repos.listings.EXPECT().FindByID(ctx, sold.ID).Return(sold, nil)
	qr.EXPECT().GenerateListingQR(active.ID).Return([]byte("png"), nil)

	png, err := srv.ListingShareQR(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = srv.ListingShareQR(ctx, sold.ID)
	require.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}
