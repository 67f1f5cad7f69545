package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context for a request made by identity (nil for anonymous).
func newTestContext(method, target, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		deliverycontext.SetIdentity(c, identity)
	}

	return c, rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func TestOnboardingHandler_CompleteOnboarding(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		uc := mockUsecase.NewMockOnboardingUsecase(t)
		uc.EXPECT().CompleteOnboarding(mock.Anything, identity, mock.MatchedBy(func(in *usecase.OnboardingInput) bool {
			return len(in.Roles) == 2 && in.Roles[0] == "seller" && in.PreferredTrack == "digital"
		})).Return(&usecase.OnboardingResult{Success: true, Destination: entity.DestinationSellerDashboard}, nil)

		h := NewOnboardingHandler(OnboardingHandlerParams{OnboardingUC: uc, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/v1/onboarding",
			`{"roles":["seller","buyer"],"preferred_track":"digital"}`, identity)

		require.NoError(t, h.CompleteOnboarding(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		result := decodeData[usecase.OnboardingResult](t, rec)
		assert.True(t, result.Success)
		assert.Equal(t, entity.DestinationSellerDashboard, result.Destination)
	})

	t.Run("failure is a result value", func(t *testing.T) {
		uc := mockUsecase.NewMockOnboardingUsecase(t)
		uc.EXPECT().CompleteOnboarding(mock.Anything, identity, mock.Anything).
			Return(&usecase.OnboardingResult{Error: "Choose at least one role"}, nil)

		h := NewOnboardingHandler(OnboardingHandlerParams{OnboardingUC: uc, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/v1/onboarding", `{"roles":[]}`, identity)

		require.NoError(t, h.CompleteOnboarding(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		result := decodeData[usecase.OnboardingResult](t, rec)
		assert.False(t, result.Success)
		assert.Equal(t, "Choose at least one role", result.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := mockUsecase.NewMockOnboardingUsecase(t)

		h := NewOnboardingHandler(OnboardingHandlerParams{OnboardingUC: uc, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/v1/onboarding", `{"roles":`, identity)

		require.NoError(t, h.CompleteOnboarding(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestListingHandler_CreateListing(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}

	t.Run("created", func(t *testing.T) {
		uc := mockUsecase.NewMockListingUsecase(t)
		uc.EXPECT().CreateListing(mock.Anything, identity, mock.MatchedBy(func(in *usecase.CreateListingInput) bool {
			return in.AskingPrice.Equal(decimal.NewFromInt(250000)) && in.Publish
		})).Return(&entity.Listing{
			ID:          uuid.New(),
			SellerID:    identity.ID,
			Title:       "Agency",
			Track:       entity.TrackOperational,
			AskingPrice: decimal.NewFromInt(250000),
			Status:      entity.ListingActive,
		}, nil)

		h := NewListingHandler(ListingHandlerParams{ListingUC: uc, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/v1/listings",
			`{"title":"Agency","industry":"agency","track":"operational","asking_price":"250000","publish":true}`, identity)

		require.NoError(t, h.CreateListing(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		listing := decodeData[ListingResponse](t, rec)
		assert.Equal(t, identity.ID, listing.SellerID)
		assert.Equal(t, entity.ListingActive, listing.Status)
	})

	t.Run("invalid track", func(t *testing.T) {
		uc := mockUsecase.NewMockListingUsecase(t)

		h := NewListingHandler(ListingHandlerParams{ListingUC: uc, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodPost, "/api/v1/listings",
			`{"title":"Agency","industry":"agency","track":"all","asking_price":"1"}`, identity)

		require.NoError(t, h.CreateListing(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListingHandler_GetListing(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		h := NewListingHandler(ListingHandlerParams{ListingUC: mockUsecase.NewMockListingUsecase(t), Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodGet, "/", "", nil)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, h.GetListing(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		uc := mockUsecase.NewMockListingUsecase(t)
		uc.EXPECT().GetListing(mock.Anything, (*entity.Identity)(nil), id).Return(nil, domainerrors.ErrListingNotFound)

		h := NewListingHandler(ListingHandlerParams{ListingUC: uc, Logger: newDiscardLogger()})
		c, rec := newTestContext(http.MethodGet, "/", "", nil)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.GetListing(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "LISTING_NOT_FOUND", body.Error.Code)
	})
}

func TestListingHandler_GetListingQR(t *testing.T) {
	id := uuid.New()
	uc := mockUsecase.NewMockListingUsecase(t)
	uc.EXPECT().ListingShareQR(mock.Anything, id).Return([]byte("\x89PNG"), nil)

	h := NewListingHandler(ListingHandlerParams{ListingUC: uc, Logger: newDiscardLogger()})
	c, rec := newTestContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.GetListingQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestDealHandler_SubmitOffer(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}
	dealID := uuid.New()

	uc := mockUsecase.NewMockDealUsecase(t)
	uc.EXPECT().SubmitOffer(mock.Anything, identity, dealID, mock.MatchedBy(func(in *usecase.SubmitOfferInput) bool {
		return in.Amount.Equal(decimal.RequireFromString("95000.50")) && in.Terms == "90 day close"
	})).Return(&entity.Offer{
		ID:      uuid.New(),
		DealID:  dealID,
		BuyerID: identity.ID,
		Amount:  decimal.RequireFromString("95000.50"),
		Terms:   "90 day close",
		Status:  entity.OfferPending,
	}, nil)

	h := NewDealHandler(DealHandlerParams{DealUC: uc, Logger: newDiscardLogger()})
	c, rec := newTestContext(http.MethodPost, "/", `{"amount":95000.50,"terms":"90 day close"}`, identity)
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())

	require.NoError(t, h.SubmitOffer(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	offer := decodeData[OfferResponse](t, rec)
	assert.Equal(t, entity.OfferPending, offer.Status)
	assert.True(t, offer.Amount.Equal(decimal.RequireFromString("95000.5")))
}

func TestDealHandler_GetDealRoom_NotParticipant(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}
	dealID := uuid.New()

	uc := mockUsecase.NewMockDealUsecase(t)
	uc.EXPECT().GetDealRoom(mock.Anything, identity, dealID).Return(nil, domainerrors.ErrNotDealParticipant)

	h := NewDealHandler(DealHandlerParams{DealUC: uc, Logger: newDiscardLogger()})
	c, rec := newTestContext(http.MethodGet, "/", "", identity)
	c.SetParamNames("id")
	c.SetParamValues(dealID.String())

	require.NoError(t, h.GetDealRoom(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDealHandler_SendMessage_EmptyBody(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}

	h := NewDealHandler(DealHandlerParams{DealUC: mockUsecase.NewMockDealUsecase(t), Logger: newDiscardLogger()})
	c, rec := newTestContext(http.MethodPost, "/", `{"body":""}`, identity)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.SendMessage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeHandler_GetSectionAccess(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}
	access := mockUsecase.NewMockAccessUsecase(t)
	access.EXPECT().IsAdmin(mock.Anything, identity).Return(false)
	access.EXPECT().IsFounder(mock.Anything, identity).Return(true)

	h := NewMeHandler(MeHandlerParams{
		RoutingUC:     mockUsecase.NewMockRoutingUsecase(t),
		ProfileUC:     mockUsecase.NewMockProfileUsecase(t),
		EntitlementUC: mockUsecase.NewMockEntitlementUsecase(t),
		AccessUC:      access,
		Logger:        newDiscardLogger(),
	})
	c, rec := newTestContext(http.MethodGet, "/", "", identity)

	require.NoError(t, h.GetSectionAccess(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, SectionAccessResponse{Admin: false, Founder: true}, decodeData[SectionAccessResponse](t, rec))
}

func TestMeHandler_GetProfile_NoSession(t *testing.T) {
	h := NewMeHandler(MeHandlerParams{
		RoutingUC:     mockUsecase.NewMockRoutingUsecase(t),
		ProfileUC:     mockUsecase.NewMockProfileUsecase(t),
		EntitlementUC: mockUsecase.NewMockEntitlementUsecase(t),
		AccessUC:      mockUsecase.NewMockAccessUsecase(t),
		Logger:        newDiscardLogger(),
	})
	c, rec := newTestContext(http.MethodGet, "/", "", nil)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
