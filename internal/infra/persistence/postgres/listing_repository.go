package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingOrder maps the whitelisted sorts to ORDER BY clauses. Ties break on id for stable paging.
//
//nolint:gochecknoglobals
var listingOrder = map[entity.ListingSort]string{
	entity.SortNewest:      "created_at DESC, id DESC",
	entity.SortPriceAsc:    "asking_price ASC, id ASC",
	entity.SortPriceDesc:   "asking_price DESC, id DESC",
	entity.SortRevenueDesc: "annual_revenue DESC, id DESC",
}

// listingRepository implements the domain.ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// Search runs a sanitised filter. The query text is expected to be LIKE-escaped already.
func (repo *listingRepository) Search(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ListingModel{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("(title ILIKE ? OR summary ILIKE ?)", pattern, pattern)
	}
	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}
	if filter.Track != entity.TrackAll && filter.Track.IsValid() {
		query = query.Where("track = ?", filter.Track.String())
	}
	if filter.MinPrice != nil {
		query = query.Where("asking_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("asking_price <= ?", *filter.MaxPrice)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count listings")
	}

	order, ok := listingOrder[filter.Sort]
	if !ok {
		order = listingOrder[entity.SortNewest]
	}

	var listingsM []model.ListingModel
	err := query.
		Order(order).
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&listingsM).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search listings")
	}

	listings := make([]*entity.Listing, 0, len(listingsM))
	for i := range listingsM {
		listings = append(listings, toListingDomain(&listingsM[i]))
	}

	return listings, total, nil
}

func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("listing violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

func (repo *listingRepository) CountActive(ctx context.Context, track entity.Track) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("status = ?", string(entity.ListingActive))
	if track != entity.TrackAll && track.IsValid() {
		query = query.Where("track = ?", track.String())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active listings")
	}

	return count, nil
}

// --- Mapper Functions ---

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:            data.ID,
		SellerID:      data.SellerID,
		Title:         data.Title,
		Summary:       data.Summary,
		Industry:      data.Industry,
		Track:         entity.Track(data.Track),
		AskingPrice:   data.AskingPrice,
		AnnualRevenue: data.AnnualRevenue,
		AnnualProfit:  data.AnnualProfit,
		Location:      data.Location,
		Status:        entity.ListingStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:            data.ID,
		SellerID:      data.SellerID,
		Title:         data.Title,
		Summary:       data.Summary,
		Industry:      data.Industry,
		Track:         data.Track.String(),
		AskingPrice:   data.AskingPrice,
		AnnualRevenue: data.AnnualRevenue,
		AnnualProfit:  data.AnnualProfit,
		Location:      data.Location,
		Status:        string(data.Status),
	}
}
