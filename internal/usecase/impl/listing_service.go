package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	validate  *validator.Validate
	logger    *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		txManager: params.TxManager,
		qrService: params.QRService,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchListings returns one page of listings for the sanitised parameters.
func (srv *listingService) SearchListings(
	ctx context.Context,
	viewer *entity.Identity,
	params *usecase.ListingSearchParams,
) (*usecase.ListingPage, error) {
	if params == nil {
		params = &usecase.ListingSearchParams{}
	}
	filter := params.Sanitize(viewer)

	page := &usecase.ListingPage{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.ListingRepo().Search(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to search listings")
		}
		page.Items = items
		page.Total = total

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	if page.Items == nil {
		page.Items = []*entity.Listing{}
	}

	return page, nil
}

// GetListing returns an active listing. Sellers also see their own non-active listings.
func (srv *listingService) GetListing(ctx context.Context, viewer *entity.Identity, id uuid.UUID) (*entity.Listing, error) {
	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.Status != entity.ListingActive && (viewer == nil || viewer.ID != listing.SellerID) {
		return nil, domainerrors.ErrListingNotFound
	}

	return listing, nil
}

// CreateListing stores a new listing owned by the caller, who must hold the seller role.
func (srv *listingService) CreateListing(
	ctx context.Context,
	identity *entity.Identity,
	input *usecase.CreateListingInput,
) (*entity.Listing, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := srv.validateListingInput(input); err != nil {
		return nil, err
	}

	status := entity.ListingDraft
	if input.Publish {
		status = entity.ListingActive
	}
	now := time.Now().UTC()
	listing := &entity.Listing{
		SellerID:      identity.ID,
		Title:         strings.TrimSpace(input.Title),
		Summary:       strings.TrimSpace(input.Summary),
		Industry:      strings.ToLower(strings.TrimSpace(input.Industry)),
		Track:         entity.Track(input.Track),
		AskingPrice:   input.AskingPrice,
		AnnualRevenue: input.AnnualRevenue,
		AnnualProfit:  input.AnnualProfit,
		Location:      strings.TrimSpace(input.Location),
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().FindByUserID(ctx, identity.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) || errors.Is(err, repository.ErrInvalidProfile) {
				return domainerrors.ErrSellerRoleRequired
			}

			return errors.Wrap(err, "failed to find profile")
		}
		if !profile.HasRole(entity.RoleSeller) {
			return domainerrors.ErrSellerRoleRequired
		}

		if err := repoFactory.ListingRepo().Create(ctx, listing); err != nil {
			return errors.Wrap(err, "failed to create listing")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created",
		slog.String("listing_id", listing.ID.String()),
		slog.String("seller_id", identity.ID.String()),
		slog.String("status", string(listing.Status)),
	)

	return listing, nil
}

// ListingShareQR renders the share QR code of an active listing.
func (srv *listingService) ListingShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	listing, err := srv.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.Status != entity.ListingActive {
		return nil, domainerrors.ErrListingNotFound
	}

	png, err := srv.qrService.GenerateListingQR(listing.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}

func (srv *listingService) findListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listing *entity.Listing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ListingRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}
		listing = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get listing")
	}

	return listing, nil
}

func (srv *listingService) validateListingInput(input *usecase.CreateListingInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("listing payload is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if !input.AskingPrice.IsPositive() {
		return domainerrors.ErrValidationFailed.WithDetails("asking_price must be greater than zero")
	}
	if input.AnnualRevenue.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("annual_revenue must not be negative")
	}

	return nil
}
