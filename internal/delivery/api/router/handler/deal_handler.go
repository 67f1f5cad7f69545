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

// DealHandlerParams holds dependencies for DealHandler, injected by Fx.
type DealHandlerParams struct {
	fx.In

	DealUC usecase.DealUsecase
	Logger *slog.Logger
}

// DealHandler serves NDA signing and deal-room collaboration
type DealHandler struct {
	dealUC usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler
func NewDealHandler(params DealHandlerParams) *DealHandler {
	return &DealHandler{
		dealUC: params.DealUC,
		logger: params.Logger,
	}
}

// SignNDA handles signing the NDA of a listing, opening the caller's deal room
func (h *DealHandler) SignNDA(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	listingID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	room, err := h.dealUC.SignNDA(c.Request().Context(), identity, listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDealRoomResponse(room))
}

// ListDealRooms handles listing the caller's deal rooms
func (h *DealHandler) ListDealRooms(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	rooms, err := h.dealUC.ListDealRooms(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*DealRoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toDealRoomResponse(room))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetDealRoom handles retrieving a deal room with its messages and offers
func (h *DealHandler) GetDealRoom(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	dealID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal ID")
	}

	detail, err := h.dealUC.GetDealRoom(c.Request().Context(), identity, dealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDealRoomDetailResponse(detail))
}

// SendMessage handles posting a message to a deal room
func (h *DealHandler) SendMessage(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	dealID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal ID")
	}

	var req usecase.SendMessageInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	message, err := h.dealUC.SendMessage(c.Request().Context(), identity, dealID, req.Body)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDealMessageResponse(message))
}

// SubmitOffer handles the buyer's letter of intent
func (h *DealHandler) SubmitOffer(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return errUnauthenticated(c)
	}

	dealID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal ID")
	}

	var req usecase.SubmitOfferInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.dealUC.SubmitOffer(c.Request().Context(), identity, dealID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOfferResponse(offer))
}
