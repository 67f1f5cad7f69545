package impl

import (
	"context"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/persistence/memory"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestMarketplaceFlow drives a buyer and a seller through onboarding, listing, NDA and offer
// against the in-memory store.
func TestMarketplaceFlow(t *testing.T) {
	ctx := context.Background()
	logger := newDiscardLogger()
	txManager := memory.NewTransactionManager(memory.NewStore())

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.AnythingOfType("*service.DomainEvent")).Return(nil).Maybe()
	qr := mockService.NewMockQRCodeService(t)

	entitlements, err := NewEntitlementService(EntitlementServiceParams{TxManager: txManager, Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	onboarding := NewOnboardingService(OnboardingServiceParams{TxManager: txManager, Publisher: publisher, Logger: logger})
	profiles := NewProfileService(ProfileServiceParams{TxManager: txManager, Publisher: publisher, Logger: logger})
	listings := NewListingService(ListingServiceParams{TxManager: txManager, QRService: qr, Logger: logger})
	deals := NewDealService(DealServiceParams{TxManager: txManager, Entitlements: entitlements, Publisher: publisher, Logger: logger})
	routing := NewRoutingService(txManager, logger)
	access := NewAccessService(txManager, logger)
	analytics := NewAnalyticsService(txManager, logger)

	seller := &entity.Identity{ID: uuid.New(), Email: "seller@example.com"}
	buyer := &entity.Identity{ID: uuid.New(), Email: "buyer@example.com"}
	operator := &entity.Identity{ID: uuid.New(), Email: "ops@example.com"}

	assert.Equal(t, entity.DestinationOnboarding, routing.DestinationForUser(ctx, seller.ID))

	for identity, roles := range map[*entity.Identity][]string{
		seller:   {"seller"},
		buyer:    {"buyer"},
		operator: {"buyer"},
	} {
		result, err := onboarding.CompleteOnboarding(ctx, identity, &usecase.OnboardingInput{
			Roles:          roles,
			PreferredTrack: "digital",
		})
		require.NoError(t, err)
		require.True(t, result.Success, result.Error)
	}
	assert.Equal(t, entity.DestinationSellerDashboard, routing.DestinationForUser(ctx, seller.ID))
	assert.Equal(t, entity.DestinationBuyerDashboard, routing.DestinationForUser(ctx, buyer.ID))

	listing, err := listings.CreateListing(ctx, seller, &usecase.CreateListingInput{
		Title:         "Newsletter with 40k subscribers",
		Industry:      "content",
		Track:         "digital",
		AskingPrice:   decimal.NewFromInt(120000),
		AnnualRevenue: decimal.NewFromInt(60000),
		AnnualProfit:  decimal.NewFromInt(45000),
		Publish:       true,
	})
	require.NoError(t, err)

	page, err := listings.SearchListings(ctx, buyer, &usecase.ListingSearchParams{Query: "newsletter"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, listing.ID, page.Items[0].ID)

	_, err = deals.SignNDA(ctx, buyer, listing.ID)
	var denied *domainerrors.EntitlementDeniedError
	require.ErrorAs(t, err, &denied)

	require.NoError(t, profiles.UpdateTier(ctx, operator, buyer.ID, entity.TierPro))

	room, err := deals.SignNDA(ctx, buyer, listing.ID)
	require.NoError(t, err)
	again, err := deals.SignNDA(ctx, buyer, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, again.ID)
	assert.True(t, room.NDASignedAt.Equal(*again.NDASignedAt))

	_, err = deals.SendMessage(ctx, seller, room.ID, "Happy to share the numbers.")
	require.NoError(t, err)
	_, err = deals.SubmitOffer(ctx, buyer, room.ID, &usecase.SubmitOfferInput{Amount: decimal.NewFromInt(100000)})
	require.NoError(t, err)

	detail, err := deals.GetDealRoom(ctx, seller, room.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Messages, 1)
	assert.Len(t, detail.Offers, 1)
	assert.NotNil(t, detail.Room.LOISubmittedAt)

	_, err = deals.GetDealRoom(ctx, operator, room.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotDealParticipant)

	assert.False(t, access.IsFounder(ctx, operator))
	require.NoError(t, profiles.GrantRole(ctx, operator, operator.ID, entity.RoleFounder))
	assert.True(t, access.IsFounder(ctx, operator))

	metrics, err := analytics.GetMetrics(ctx, entity.TrackDigital)
	require.NoError(t, err)
	assert.Equal(t, int64(1), metrics.ActiveListings)
	assert.Equal(t, int64(1), metrics.NDAsSigned)
	assert.Equal(t, int64(1), metrics.OffersSubmitted)
	assert.Equal(t, int64(1), metrics.ProfilesByTier[entity.TierPro])
}
