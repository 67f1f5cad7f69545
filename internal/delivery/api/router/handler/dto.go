package handler

import (
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileResponse is the public shape of a profile
type ProfileResponse struct {
	UserID           uuid.UUID               `json:"user_id"`
	Role             entity.Role             `json:"role"`
	Roles            []string                `json:"roles"`
	OnboardingStatus entity.OnboardingStatus `json:"onboarding_status"`
	PreferredTrack   *entity.Track           `json:"preferred_track"`
	Tier             entity.Tier             `json:"tier"`
	DisplayName      *string                 `json:"display_name"`
	CompanyName      *string                 `json:"company_name"`
	IsVerified       bool                    `json:"is_verified"`
	Grants           []RoleGrantResponse     `json:"grants,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// RoleGrantResponse is a secondary role granted by an operator
type RoleGrantResponse struct {
	Role      entity.Role `json:"role"`
	GrantedBy *uuid.UUID  `json:"granted_by"`
	GrantedAt time.Time   `json:"granted_at"`
}

func toProfileResponse(profile *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:           profile.UserID,
		Role:             profile.PrimaryRole(),
		Roles:            profile.Roles.ToStrings(),
		OnboardingStatus: profile.OnboardingStatus,
		PreferredTrack:   profile.PreferredTrack,
		Tier:             profile.Tier,
		DisplayName:      profile.DisplayName,
		CompanyName:      profile.CompanyName,
		IsVerified:       profile.IsVerified,
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}
}

func toProfileDetailResponse(detail *usecase.ProfileDetail) *ProfileResponse {
	resp := toProfileResponse(detail.Profile)
	resp.Grants = make([]RoleGrantResponse, 0, len(detail.Grants))
	for _, grant := range detail.Grants {
		resp.Grants = append(resp.Grants, RoleGrantResponse{
			Role:      grant.Role,
			GrantedBy: grant.GrantedBy,
			GrantedAt: grant.GrantedAt,
		})
	}

	return resp
}

// ListingResponse is the public shape of a listing
type ListingResponse struct {
	ID            uuid.UUID            `json:"id"`
	SellerID      uuid.UUID            `json:"seller_id"`
	Title         string               `json:"title"`
	Summary       string               `json:"summary"`
	Industry      string               `json:"industry"`
	Track         entity.Track         `json:"track"`
	AskingPrice   decimal.Decimal      `json:"asking_price"`
	AnnualRevenue decimal.Decimal      `json:"annual_revenue"`
	AnnualProfit  decimal.Decimal      `json:"annual_profit"`
	Location      string               `json:"location,omitempty"`
	Status        entity.ListingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ListingPageResponse is one page of listing search results
type ListingPageResponse struct {
	Items    []*ListingResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func toListingResponse(listing *entity.Listing) *ListingResponse {
	return &ListingResponse{
		ID:            listing.ID,
		SellerID:      listing.SellerID,
		Title:         listing.Title,
		Summary:       listing.Summary,
		Industry:      listing.Industry,
		Track:         listing.Track,
		AskingPrice:   listing.AskingPrice,
		AnnualRevenue: listing.AnnualRevenue,
		AnnualProfit:  listing.AnnualProfit,
		Location:      listing.Location,
		Status:        listing.Status,
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
	}
}

func toListingPageResponse(page *usecase.ListingPage) *ListingPageResponse {
	items := make([]*ListingResponse, 0, len(page.Items))
	for _, listing := range page.Items {
		items = append(items, toListingResponse(listing))
	}

	return &ListingPageResponse{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

// DealRoomResponse is the public shape of a deal room
type DealRoomResponse struct {
	ID             uuid.UUID         `json:"id"`
	ListingID      uuid.UUID         `json:"listing_id"`
	BuyerID        uuid.UUID         `json:"buyer_id"`
	SellerID       uuid.UUID         `json:"seller_id"`
	NDASignedAt    *time.Time        `json:"nda_signed_at"`
	LOISubmittedAt *time.Time        `json:"loi_submitted_at"`
	Status         entity.DealStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

// DealMessageResponse is a message posted in a deal room
type DealMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// OfferResponse is a letter of intent
type OfferResponse struct {
	ID        uuid.UUID          `json:"id"`
	BuyerID   uuid.UUID          `json:"buyer_id"`
	Amount    decimal.Decimal    `json:"amount"`
	Terms     string             `json:"terms,omitempty"`
	Status    entity.OfferStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// DealRoomDetailResponse bundles a room with its messages and offers
type DealRoomDetailResponse struct {
	*DealRoomResponse
	Messages []*DealMessageResponse `json:"messages"`
	Offers   []*OfferResponse       `json:"offers"`
}

func toDealRoomResponse(room *entity.DealRoom) *DealRoomResponse {
	return &DealRoomResponse{
		ID:             room.ID,
		ListingID:      room.ListingID,
		BuyerID:        room.BuyerID,
		SellerID:       room.SellerID,
		NDASignedAt:    room.NDASignedAt,
		LOISubmittedAt: room.LOISubmittedAt,
		Status:         room.Status,
		CreatedAt:      room.CreatedAt,
	}
}

func toDealMessageResponse(message *entity.DealMessage) *DealMessageResponse {
	return &DealMessageResponse{
		ID:        message.ID,
		SenderID:  message.SenderID,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}
}

func toOfferResponse(offer *entity.Offer) *OfferResponse {
	return &OfferResponse{
		ID:        offer.ID,
		BuyerID:   offer.BuyerID,
		Amount:    offer.Amount,
		Terms:     offer.Terms,
		Status:    offer.Status,
		CreatedAt: offer.CreatedAt,
	}
}

func toDealRoomDetailResponse(detail *entity.DealRoomDetail) *DealRoomDetailResponse {
	resp := &DealRoomDetailResponse{
		DealRoomResponse: toDealRoomResponse(detail.Room),
		Messages:         make([]*DealMessageResponse, 0, len(detail.Messages)),
		Offers:           make([]*OfferResponse, 0, len(detail.Offers)),
	}
	for _, message := range detail.Messages {
		resp.Messages = append(resp.Messages, toDealMessageResponse(message))
	}
	for _, offer := range detail.Offers {
		resp.Offers = append(resp.Offers, toOfferResponse(offer))
	}

	return resp
}
