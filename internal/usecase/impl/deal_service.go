package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxMessageRunes = 5000
	maxTermsRunes   = 10000
)

// dealService implements the DealUsecase interface.
type dealService struct {
	txManager    repository.TransactionManager
	entitlements usecase.EntitlementUsecase
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// DealServiceParams holds dependencies for DealService, injected by Fx.
type DealServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Entitlements usecase.EntitlementUsecase
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewDealService is the constructor for dealService.
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	return &dealService{
		txManager:    params.TxManager,
		entitlements: params.Entitlements,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignNDA records the buyer's NDA signature on a listing, opening the deal room on first use.
func (srv *dealService) SignNDA(ctx context.Context, identity *entity.Identity, listingID uuid.UUID) (*entity.DealRoom, error) {
	if _, err := srv.entitlements.RequireEntitlement(ctx, identity, entity.EntitlementNDAAccess); err != nil {
		return nil, err
	}

	var (
		room        *entity.DealRoom
		newlySigned bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listing, err := repoFactory.ListingRepo().FindByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}
		if listing.Status != entity.ListingActive {
			return domainerrors.ErrListingNotFound
		}
		if listing.SellerID == identity.ID {
			return domainerrors.ErrOwnListing
		}

		dealRepo := repoFactory.DealRepo()
		now := time.Now().UTC()

		existing, err := dealRepo.FindByListingAndBuyer(ctx, listingID, identity.ID)
		switch {
		case err == nil:
			room = existing
			if room.NDASigned() {
				return nil
			}
			room.NDASignedAt = &now
			room.UpdatedAt = now
			newlySigned = true

			return errors.Wrap(dealRepo.Update(ctx, room), "failed to update deal room")
		case errors.Is(err, repository.ErrDealNotFound):
		default:
			return errors.Wrap(err, "failed to find deal room")
		}

		room = &entity.DealRoom{
			ListingID:   listing.ID,
			BuyerID:     identity.ID,
			SellerID:    listing.SellerID,
			NDASignedAt: &now,
			Status:      entity.DealOpen,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		newlySigned = true

		return errors.Wrap(dealRepo.Create(ctx, room), "failed to create deal room")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign NDA")
	}

	if newlySigned {
		srv.log(ctx).Info("NDA signed",
			slog.String("deal_id", room.ID.String()),
			slog.String("listing_id", listingID.String()),
			slog.String("buyer_id", identity.ID.String()),
		)
		publishEvent(ctx, srv.publisher, srv.log(ctx), newDomainEvent(ctx, service.EventNDASigned, identity.ID, map[string]string{
			"deal_id":    room.ID.String(),
			"listing_id": listingID.String(),
			"seller_id":  room.SellerID.String(),
		}))
	}

	return room, nil
}

// GetDealRoom returns the room with its messages and offers to one of its participants.
func (srv *dealService) GetDealRoom(ctx context.Context, identity *entity.Identity, dealID uuid.UUID) (*entity.DealRoomDetail, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	detail := &entity.DealRoomDetail{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()

		room, err := findParticipantRoom(ctx, dealRepo, identity.ID, dealID)
		if err != nil {
			return err
		}
		detail.Room = room

		if detail.Messages, err = dealRepo.ListMessages(ctx, dealID); err != nil {
			return errors.Wrap(err, "failed to list messages")
		}
		if detail.Offers, err = dealRepo.ListOffers(ctx, dealID); err != nil {
			return errors.Wrap(err, "failed to list offers")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get deal room")
	}

	return detail, nil
}

// ListDealRooms returns every room the caller takes part in.
func (srv *dealService) ListDealRooms(ctx context.Context, identity *entity.Identity) ([]*entity.DealRoom, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	rooms := []*entity.DealRoom{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.DealRepo().ListByParticipant(ctx, identity.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list deal rooms")
		}
		if found != nil {
			rooms = found
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deal rooms")
	}

	return rooms, nil
}

// SendMessage posts a message to a room whose NDA has been signed.
func (srv *dealService) SendMessage(ctx context.Context, identity *entity.Identity, dealID uuid.UUID, body string) (*entity.DealMessage, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message body is required")
	}
	if utf8.RuneCountInString(body) > maxMessageRunes {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message body is too long")
	}

	message := &entity.DealMessage{
		DealID:    dealID,
		SenderID:  identity.ID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()

		room, err := findParticipantRoom(ctx, dealRepo, identity.ID, dealID)
		if err != nil {
			return err
		}
		if err := requireOpenRoom(room); err != nil {
			return err
		}

		return errors.Wrap(dealRepo.AddMessage(ctx, message), "failed to add message")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	return message, nil
}

// SubmitOffer records the buyer's letter of intent.
func (srv *dealService) SubmitOffer(
	ctx context.Context,
	identity *entity.Identity,
	dealID uuid.UUID,
	input *usecase.SubmitOfferInput,
) (*entity.Offer, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input == nil || !input.Amount.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offer amount must be greater than zero")
	}
	terms := strings.TrimSpace(input.Terms)
	if utf8.RuneCountInString(terms) > maxTermsRunes {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offer terms are too long")
	}

	now := time.Now().UTC()
	offer := &entity.Offer{
		DealID:    dealID,
		BuyerID:   identity.ID,
		Amount:    input.Amount,
		Terms:     terms,
		Status:    entity.OfferPending,
		CreatedAt: now,
	}

	var room *entity.DealRoom

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dealRepo := repoFactory.DealRepo()

		found, err := findParticipantRoom(ctx, dealRepo, identity.ID, dealID)
		if err != nil {
			return err
		}
		room = found
		if room.BuyerID != identity.ID {
			return domainerrors.ErrForbidden.WithDetails("only the buyer can submit an offer")
		}
		if err := requireOpenRoom(room); err != nil {
			return err
		}

		if err := dealRepo.CreateOffer(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to create offer")
		}

		if room.LOISubmittedAt == nil {
			room.LOISubmittedAt = &now
			room.UpdatedAt = now

			return errors.Wrap(dealRepo.Update(ctx, room), "failed to update deal room")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit offer")
	}

	srv.log(ctx).Info("Offer submitted",
		slog.String("deal_id", dealID.String()),
		slog.String("offer_id", offer.ID.String()),
	)
	publishEvent(ctx, srv.publisher, srv.log(ctx), newDomainEvent(ctx, service.EventOfferSubmitted, identity.ID, map[string]string{
		"deal_id":    dealID.String(),
		"listing_id": room.ListingID.String(),
		"offer_id":   offer.ID.String(),
		"amount":     offer.Amount.StringFixed(2),
	}))

	return offer, nil
}

// findParticipantRoom loads a room and checks the user takes part in it.
func findParticipantRoom(ctx context.Context, dealRepo repository.DealRepository, userID, dealID uuid.UUID) (*entity.DealRoom, error) {
	room, err := dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal room")
	}
	if !room.IsParticipant(userID) {
		return nil, domainerrors.ErrNotDealParticipant
	}

	return room, nil
}

func requireOpenRoom(room *entity.DealRoom) error {
	if !room.NDASigned() {
		return domainerrors.ErrNDARequired
	}
	if room.Status != entity.DealOpen {
		return domainerrors.ErrConflict.WithDetails("deal room is closed")
	}

	return nil
}
