package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dealRepository implements the domain.DealRepository interface using GORM.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{db: db}
}

func (repo *dealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DealRoom, error) {
	return repo.first(ctx, repo.db.Where("id = ?", id))
}

func (repo *dealRepository) FindByListingAndBuyer(ctx context.Context, listingID, buyerID uuid.UUID) (*entity.DealRoom, error) {
	return repo.first(ctx, repo.db.Where("listing_id = ? AND buyer_id = ?", listingID, buyerID))
}

func (repo *dealRepository) first(ctx context.Context, query *gorm.DB) (*entity.DealRoom, error) {
	var roomM model.DealRoomModel
	if err := query.WithContext(ctx).First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal room")
	}

	return toDealRoomDomain(&roomM), nil
}

func (repo *dealRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.DealRoom, error) {
	var roomsM []model.DealRoomModel
	err := repo.db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&roomsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deal rooms")
	}

	rooms := make([]*entity.DealRoom, 0, len(roomsM))
	for i := range roomsM {
		rooms = append(rooms, toDealRoomDomain(&roomsM[i]))
	}

	return rooms, nil
}

func (repo *dealRepository) Create(ctx context.Context, room *entity.DealRoom) error {
	roomM := fromDealRoomDomain(room)

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("deal room already exists for this buyer and listing")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingNotFound.WrapMessage("deal room references an unknown listing")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deal room")
	}

	room.ID = roomM.ID
	room.CreatedAt = roomM.CreatedAt
	room.UpdatedAt = roomM.UpdatedAt

	return nil
}

func (repo *dealRepository) Update(ctx context.Context, room *entity.DealRoom) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.DealRoomModel{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"nda_signed_at":    room.NDASignedAt,
			"loi_submitted_at": room.LOISubmittedAt,
			"status":           string(room.Status),
			"updated_at":       now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update deal room")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}
	room.UpdatedAt = now

	return nil
}

func (repo *dealRepository) AddMessage(ctx context.Context, message *entity.DealMessage) error {
	messageM := &model.DealMessageModel{
		ID:       message.ID,
		DealID:   message.DealID,
		SenderID: message.SenderID,
		Body:     message.Body,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add deal message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

func (repo *dealRepository) ListMessages(ctx context.Context, dealID uuid.UUID) ([]*entity.DealMessage, error) {
	var messagesM []model.DealMessageModel
	err := repo.db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Order("created_at ASC").
		Find(&messagesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deal messages")
	}

	messages := make([]*entity.DealMessage, 0, len(messagesM))
	for _, m := range messagesM {
		messages = append(messages, &entity.DealMessage{
			ID:        m.ID,
			DealID:    m.DealID,
			SenderID:  m.SenderID,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}

	return messages, nil
}

func (repo *dealRepository) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	offerM := &model.OfferModel{
		ID:      offer.ID,
		DealID:  offer.DealID,
		BuyerID: offer.BuyerID,
		Amount:  offer.Amount,
		Terms:   offer.Terms,
		Status:  string(offer.Status),
	}

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt

	return nil
}

func (repo *dealRepository) ListOffers(ctx context.Context, dealID uuid.UUID) ([]*entity.Offer, error) {
	var offersM []model.OfferModel
	err := repo.db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Order("created_at ASC").
		Find(&offersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offersM))
	for _, o := range offersM {
		offers = append(offers, &entity.Offer{
			ID:        o.ID,
			DealID:    o.DealID,
			BuyerID:   o.BuyerID,
			Amount:    o.Amount,
			Terms:     o.Terms,
			Status:    entity.OfferStatus(o.Status),
			CreatedAt: o.CreatedAt,
		})
	}

	return offers, nil
}

// Stats counts signed NDAs and submitted offers, joining listings when a track is requested.
func (repo *dealRepository) Stats(ctx context.Context, track entity.Track) (*entity.DealStats, error) {
	filterTrack := track != entity.TrackAll && track.IsValid()
	stats := &entity.DealStats{}

	ndaQuery := repo.db.WithContext(ctx).
		Table("deal_rooms").
		Where("deal_rooms.nda_signed_at IS NOT NULL")
	if filterTrack {
		ndaQuery = ndaQuery.
			Joins("JOIN listings ON listings.id = deal_rooms.listing_id").
			Where("listings.track = ?", track.String())
	}
	if err := ndaQuery.Count(&stats.NDAsSigned).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count signed NDAs")
	}

	offerQuery := repo.db.WithContext(ctx).Table("offers")
	if filterTrack {
		offerQuery = offerQuery.
			Joins("JOIN deal_rooms ON deal_rooms.id = offers.deal_id").
			Joins("JOIN listings ON listings.id = deal_rooms.listing_id").
			Where("listings.track = ?", track.String())
	}
	if err := offerQuery.Count(&stats.OffersSubmitted).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	return stats, nil
}

// --- Mapper Functions ---

func toDealRoomDomain(data *model.DealRoomModel) *entity.DealRoom {
	if data == nil {
		return nil
	}

	return &entity.DealRoom{
		ID:             data.ID,
		ListingID:      data.ListingID,
		BuyerID:        data.BuyerID,
		SellerID:       data.SellerID,
		NDASignedAt:    data.NDASignedAt,
		LOISubmittedAt: data.LOISubmittedAt,
		Status:         entity.DealStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDealRoomDomain(data *entity.DealRoom) *model.DealRoomModel {
	if data == nil {
		return nil
	}

	return &model.DealRoomModel{
		ID:             data.ID,
		ListingID:      data.ListingID,
		BuyerID:        data.BuyerID,
		SellerID:       data.SellerID,
		NDASignedAt:    data.NDASignedAt,
		LOISubmittedAt: data.LOISubmittedAt,
		Status:         string(data.Status),
	}
}
