package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultUpgradePath = "/pricing"

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	txManager   repository.TransactionManager
	catalog     *entity.PlanCatalog
	upgradePath string
	logger      *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) (usecase.EntitlementUsecase, error) {
	catalog, err := NewPlanCatalog(params.Config)
	if err != nil {
		return nil, err
	}

	upgradePath := defaultUpgradePath
	if params.Config != nil && params.Config.Routes != nil && params.Config.Routes.UpgradePath != "" {
		upgradePath = params.Config.Routes.UpgradePath
	}

	return &entitlementService{
		txManager:   params.TxManager,
		catalog:     catalog,
		upgradePath: upgradePath,
		logger:      params.Logger,
	}, nil
}

// NewPlanCatalog builds the plan table from config, or returns the built-in table when no
// override is configured. Unknown tiers or entitlements in the override are rejected.
func NewPlanCatalog(cfg *config.Config) (*entity.PlanCatalog, error) {
	if cfg == nil || len(cfg.Plans) == 0 {
		return entity.DefaultPlanCatalog(), nil
	}

	known := make(map[entity.Entitlement]struct{})
	for _, tier := range entity.Tiers() {
		for _, e := range entity.DefaultPlanCatalog().Entitlements(tier) {
			known[e] = struct{}{}
		}
	}

	plans := make(map[entity.Tier][]entity.Entitlement, len(cfg.Plans))
	for rawTier, rawEntitlements := range cfg.Plans {
		tier := entity.Tier(rawTier)
		if !tier.IsValid() {
			return nil, errors.Errorf("plans: unknown tier %q", rawTier)
		}
		for _, raw := range rawEntitlements {
			e := entity.Entitlement(raw)
			if _, ok := known[e]; !ok {
				return nil, errors.Errorf("plans: unknown entitlement %q for tier %q", raw, rawTier)
			}
			plans[tier] = append(plans[tier], e)
		}
	}

	return entity.NewPlanCatalog(plans), nil
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentTier returns the user's tier. Anything short of a valid stored profile counts as free.
func (srv *entitlementService) CurrentTier(ctx context.Context, userID uuid.UUID) entity.Tier {
	profile, err := loadProfile(ctx, srv.txManager, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Failed to load profile for entitlement check, assuming free tier",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}

		return entity.TierFree
	}

	return profile.Tier
}

// CheckEntitlement evaluates the entitlement against the user's current tier.
func (srv *entitlementService) CheckEntitlement(ctx context.Context, userID uuid.UUID, entitlement entity.Entitlement) entity.EntitlementResult {
	return srv.catalog.Check(srv.CurrentTier(ctx, userID), entitlement)
}

// RequireEntitlement enforces the entitlement for the identity.
func (srv *entitlementService) RequireEntitlement(ctx context.Context, identity *entity.Identity, entitlement entity.Entitlement) (entity.EntitlementResult, error) {
	if identity == nil {
		return entity.EntitlementResult{Entitlement: entitlement, CurrentTier: entity.TierFree}, domainerrors.ErrUnauthenticated
	}

	result := srv.CheckEntitlement(ctx, identity.ID, entitlement)
	if !result.HasAccess {
		srv.log(ctx).Debug("Entitlement denied",
			slog.String("user_id", identity.ID.String()),
			slog.String("entitlement", entitlement.String()),
			slog.String("current_tier", result.CurrentTier.String()),
		)

		return result, domainerrors.NewEntitlementDeniedError(result, srv.upgradePath)
	}

	return result, nil
}

// PlanSummary lists what the user's tier unlocks.
func (srv *entitlementService) PlanSummary(ctx context.Context, userID uuid.UUID) *usecase.PlanSummary {
	tier := srv.CurrentTier(ctx, userID)

	return &usecase.PlanSummary{
		Tier:         tier,
		Entitlements: srv.catalog.Entitlements(tier),
	}
}
