package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves marketplace listings
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// SearchListings handles listing search. Anonymous callers are allowed.
func (h *ListingHandler) SearchListings(c echo.Context) error {
	var params usecase.ListingSearchParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return response.BindingError(c, "INVALID_QUERY", "Invalid search parameters")
	}

	viewer, _ := middleware.GetIdentity(c)
	page, err := h.listingUC.SearchListings(c.Request().Context(), viewer, &params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingPageResponse(page))
}

// GetListing handles retrieving a single listing
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	viewer, _ := middleware.GetIdentity(c)
	listing, err := h.listingUC.GetListing(c.Request().Context(), viewer, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(listing))
}

// CreateListing handles publishing a listing
func (h *ListingHandler) CreateListing(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	var req usecase.CreateListingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), identity, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toListingResponse(listing))
}

// GetListingQR handles rendering a share QR code for an active listing
func (h *ListingHandler) GetListingQR(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	png, err := h.listingUC.ListingShareQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
