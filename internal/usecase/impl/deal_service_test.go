package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dealServiceFixture struct {
	srv          usecase.DealUsecase
	txManager    *mockRepo.MockTransactionManager
	entitlements *mockUsecase.MockEntitlementUsecase
	publisher    *mockService.MockEventPublisher
}

func createTestDealService(t *testing.T) *dealServiceFixture {
	t.Helper()

	f := &dealServiceFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		entitlements: mockUsecase.NewMockEntitlementUsecase(t),
		publisher:    mockService.NewMockEventPublisher(t),
	}
	f.srv = NewDealService(DealServiceParams{
		TxManager:    f.txManager,
		Entitlements: f.entitlements,
		Publisher:    f.publisher,
		Logger:       newDiscardLogger(),
	})

	return f
}

func signedRoom(buyerID, sellerID uuid.UUID) *entity.DealRoom {
	signed := time.Now().Add(-time.Hour)

	return &entity.DealRoom{
		ID:          uuid.New(),
		ListingID:   uuid.New(),
		BuyerID:     buyerID,
		SellerID:    sellerID,
		NDASignedAt: &signed,
		Status:      entity.DealOpen,
	}
}

func TestDealService_SignNDA_OpensRoom(t *testing.T) {
	ctx := context.Background()
	buyer := &entity.Identity{ID: uuid.New()}
	listing := &entity.Listing{ID: uuid.New(), SellerID: uuid.New(), Status: entity.ListingActive}

	f := createTestDealService(t)
	repos := newTestRepos(t)
	expectTx(f.txManager, repos)

	f.entitlements.EXPECT().RequireEntitlement(ctx, buyer, entity.EntitlementNDAAccess).
		Return(entity.EntitlementResult{HasAccess: true}, nil)
	repos.listings.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	repos.deals.EXPECT().FindByListingAndBuyer(ctx, listing.ID, buyer.ID).Return(nil, repository.ErrDealNotFound)
	repos.deals.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.DealRoom) bool {
			return r.BuyerID == buyer.ID && r.SellerID == listing.SellerID && r.NDASignedAt != nil
		})).
		RunAndReturn(func(_ context.Context, r *entity.DealRoom) error {
			r.ID = uuid.New()

			return nil
		})
	f.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventNDASigned && e.Attributes["listing_id"] == listing.ID.String()
		})).
		Return(nil)

	room, err := f.srv.SignNDA(ctx, buyer, listing.ID)

	require.NoError(t, err)
	assert.True(t, room.NDASigned())
	assert.Equal(t, entity.DealOpen, room.Status)
}

func TestDealService_SignNDA_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	buyer := &entity.Identity{ID: uuid.New()}
	listing := &entity.Listing{ID: uuid.New(), SellerID: uuid.New(), Status: entity.ListingActive}
	existing := signedRoom(buyer.ID, listing.SellerID)
	firstSignature := *existing.NDASignedAt

	f := createTestDealService(t)
	repos := newTestRepos(t)
	expectTx(f.txManager, repos)

	f.entitlements.EXPECT().RequireEntitlement(ctx, buyer, entity.EntitlementNDAAccess).
		Return(entity.EntitlementResult{HasAccess: true}, nil)
	repos.listings.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)
	repos.deals.EXPECT().FindByListingAndBuyer(ctx, listing.ID, buyer.ID).Return(existing, nil)

	room, err := f.srv.SignNDA(ctx, buyer, listing.ID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, room.ID)
	assert.Equal(t, firstSignature, *room.NDASignedAt)
}

func TestDealService_SignNDA_Rejections(t *testing.T) {
	ctx := context.Background()
	buyer := &entity.Identity{ID: uuid.New()}

	t.Run("plan lacks nda access", func(t *testing.T) {
		f := createTestDealService(t)
		required := entity.TierPro
		denied := domainerrors.NewEntitlementDeniedError(entity.EntitlementResult{
			Entitlement:  entity.EntitlementNDAAccess,
			RequiredTier: &required,
			CurrentTier:  entity.TierFree,
		}, "/pricing")
		f.entitlements.EXPECT().RequireEntitlement(ctx, buyer, entity.EntitlementNDAAccess).
			Return(denied.Result, denied)

		_, err := f.srv.SignNDA(ctx, buyer, uuid.New())

		var target *domainerrors.EntitlementDeniedError
		require.ErrorAs(t, err, &target)
	})

	t.Run("own listing", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		listing := &entity.Listing{ID: uuid.New(), SellerID: buyer.ID, Status: entity.ListingActive}
		f.entitlements.EXPECT().RequireEntitlement(ctx, buyer, entity.EntitlementNDAAccess).
			Return(entity.EntitlementResult{HasAccess: true}, nil)
		repos.listings.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

		_, err := f.srv.SignNDA(ctx, buyer, listing.ID)

		require.ErrorIs(t, err, domainerrors.ErrOwnListing)
	})

	t.Run("inactive listing", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		listing := &entity.Listing{ID: uuid.New(), SellerID: uuid.New(), Status: entity.ListingSold}
		f.entitlements.EXPECT().RequireEntitlement(ctx, buyer, entity.EntitlementNDAAccess).
			Return(entity.EntitlementResult{HasAccess: true}, nil)
		repos.listings.EXPECT().FindByID(ctx, listing.ID).Return(listing, nil)

		_, err := f.srv.SignNDA(ctx, buyer, listing.ID)

		require.ErrorIs(t, err, domainerrors.ErrListingNotFound)
	})
}

func TestDealService_GetDealRoom(t *testing.T) {
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()
	room := signedRoom(buyerID, sellerID)

	t.Run("participant sees messages and offers", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		messages := []*entity.DealMessage{{ID: uuid.New(), DealID: room.ID, SenderID: buyerID, Body: "hi"}}
		repos.deals.EXPECT().FindByID(ctx, room.ID).Return(room, nil)
		repos.deals.EXPECT().ListMessages(ctx, room.ID).Return(messages, nil)
		repos.deals.EXPECT().ListOffers(ctx, room.ID).Return([]*entity.Offer{}, nil)

		detail, err := f.srv.GetDealRoom(ctx, &entity.Identity{ID: sellerID}, room.ID)

		require.NoError(t, err)
		assert.Equal(t, room, detail.Room)
		assert.Equal(t, messages, detail.Messages)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		repos.deals.EXPECT().FindByID(ctx, room.ID).Return(room, nil)

		_, err := f.srv.GetDealRoom(ctx, &entity.Identity{ID: uuid.New()}, room.ID)

		require.ErrorIs(t, err, domainerrors.ErrNotDealParticipant)
	})

	t.Run("missing room", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		missing := uuid.New()
		repos.deals.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrDealNotFound)

		_, err := f.srv.GetDealRoom(ctx, &entity.Identity{ID: buyerID}, missing)

		require.ErrorIs(t, err, domainerrors.ErrDealNotFound)
	})
}

func TestDealService_SendMessage(t *testing.T) {
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("posts to signed room", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		room := signedRoom(buyerID, sellerID)
		repos.deals.EXPECT().FindByID(ctx, room.ID).Return(room, nil)
		repos.deals.EXPECT().
			AddMessage(ctx, mock.MatchedBy(func(m *entity.DealMessage) bool {
				return m.Body == "Can we see the P&L?" && m.SenderID == buyerID
			})).
			Return(nil)

		msg, err := f.srv.SendMessage(ctx, &entity.Identity{ID: buyerID}, room.ID, "  Can we see the P&L?  ")

		require.NoError(t, err)
		assert.Equal(t, room.ID, msg.DealID)
	})

	t.Run("unsigned room", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		room := signedRoom(buyerID, sellerID)
		room.NDASignedAt = nil
		repos.deals.EXPECT().FindByID(ctx, room.ID).Return(room, nil)

		_, err := f.srv.SendMessage(ctx, &entity.Identity{ID: sellerID}, room.ID, "hello")

		require.ErrorIs(t, err, domainerrors.ErrNDARequired)
	})

	t.Run("empty body", func(t *testing.T) {
		f := createTestDealService(t)

		_, err := f.srv.SendMessage(ctx, &entity.Identity{ID: buyerID}, uuid.New(), "   ")

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestDealService_SubmitOffer(t *testing.T) {
	ctx := context.Background()
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("first offer sets LOI", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		room := signedRoom(buyerID, sellerID)
		repos.deals.EXPECT().FindByID(ctx, room.ID).Return(room, nil)
		repos.deals.EXPECT().CreateOffer(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)
		repos.deals.EXPECT().
			Update(ctx, mock.MatchedBy(func(r *entity.DealRoom) bool { return r.LOISubmittedAt != nil })).
			Return(nil)
		f.publisher.EXPECT().
			Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
				return e.Type == service.EventOfferSubmitted && e.Attributes["amount"] == "180000.00"
			})).
			Return(nil)

		offer, err := f.srv.SubmitOffer(ctx, &entity.Identity{ID: buyerID}, room.ID, &usecase.SubmitOfferInput{
			Amount: decimal.NewFromInt(180000),
			Terms:  "80% cash at close",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OfferPending, offer.Status)
	})

	t.Run("seller cannot offer", func(t *testing.T) {
		f := createTestDealService(t)
		repos := newTestRepos(t)
		expectTx(f.txManager, repos)
		room := signedRoom(buyerID, sellerID)
		repos.deals.EXPECT().FindByID(ctx, room.ID).Return(room, nil)

		_, err := f.srv.SubmitOffer(ctx, &entity.Identity{ID: sellerID}, room.ID, &usecase.SubmitOfferInput{
			Amount: decimal.NewFromInt(1),
		})

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("amount must be positive", func(t *testing.T) {
		f := createTestDealService(t)

		_, err := f.srv.SubmitOffer(ctx, &entity.Identity{ID: buyerID}, uuid.New(), &usecase.SubmitOfferInput{
			Amount: decimal.NewFromInt(-5),
		})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestDealService_ListDealRooms(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	f := createTestDealService(t)
	repos := newTestRepos(t)
	expectTx(f.txManager, repos)
	repos.deals.EXPECT().ListByParticipant(ctx, userID).Return(nil, nil)

	rooms, err := f.srv.ListDealRooms(ctx, &entity.Identity{ID: userID})

	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}
