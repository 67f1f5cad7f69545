package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

//nolint:gochecknoglobals
var (
	industryMultiples = map[string]decimal.Decimal{
		"saas":          decimal.RequireFromString("4.0"),
		"software":      decimal.RequireFromString("3.5"),
		"ecommerce":     decimal.RequireFromString("3.0"),
		"content":       decimal.RequireFromString("3.0"),
		"manufacturing": decimal.RequireFromString("3.5"),
		"healthcare":    decimal.RequireFromString("3.0"),
		"services":      decimal.RequireFromString("2.5"),
		"retail":        decimal.RequireFromString("2.5"),
		"agency":        decimal.RequireFromString("2.0"),
		"restaurant":    decimal.RequireFromString("2.0"),
	}
	defaultIndustryMultiple = decimal.RequireFromString("2.5")
	revenueFallbackMultiple = decimal.RequireFromString("0.5")
	lowBand                 = decimal.RequireFromString("0.8")
	highBand                = decimal.RequireFromString("1.2")
)

// valuationService implements the ValuationUsecase interface.
type valuationService struct {
	entitlements usecase.EntitlementUsecase
	validate     *validator.Validate
	logger       *slog.Logger
}

// ValuationServiceParams holds dependencies for ValuationService, injected by Fx.
type ValuationServiceParams struct {
	fx.In

	Entitlements usecase.EntitlementUsecase
	Logger       *slog.Logger
}

// NewValuationService is the constructor for valuationService.
func NewValuationService(params ValuationServiceParams) usecase.ValuationUsecase {
	return &valuationService{
		entitlements: params.Entitlements,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       params.Logger,
	}
}

func (srv *valuationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Estimate prices the business from its figures. The adjustment breakdown is only returned to
// users whose plan includes the valuation report.
func (srv *valuationService) Estimate(ctx context.Context, identity *entity.Identity, input *usecase.ValuationInput) (*entity.Valuation, error) {
	if _, err := srv.entitlements.RequireEntitlement(ctx, identity, entity.EntitlementBasicValuation); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("valuation payload is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if input.AnnualRevenue.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("annual_revenue must not be negative")
	}
	if !input.AnnualRevenue.IsPositive() && !input.AnnualProfit.IsPositive() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("annual_revenue or annual_profit must be greater than zero")
	}

	valuation := EstimateValuation(entity.ValuationInput{
		Industry:       strings.ToLower(strings.TrimSpace(input.Industry)),
		Track:          entity.ParseTrack(input.Track),
		AnnualRevenue:  input.AnnualRevenue,
		AnnualProfit:   input.AnnualProfit,
		YearsOperating: input.YearsOperating,
		GrowthRate:     input.GrowthRate,
	})

	report := srv.entitlements.CheckEntitlement(ctx, identity.ID, entity.EntitlementValuationReport)
	if !report.HasAccess {
		valuation.Breakdown = nil
	}

	srv.log(ctx).Debug("Valuation estimated",
		slog.String("user_id", identity.ID.String()),
		slog.String("basis", string(valuation.Basis)),
		slog.String("mid", valuation.Mid.StringFixed(2)),
	)

	return valuation, nil
}

// EstimateValuation applies the multiple heuristic. Profitable businesses are priced on
// profit with industry, track, age and growth adjustments; the rest at half their revenue.
func EstimateValuation(input entity.ValuationInput) *entity.Valuation {
	if !input.AnnualProfit.IsPositive() {
		mid := input.AnnualRevenue.Mul(revenueFallbackMultiple)

		return &entity.Valuation{
			Low:      mid.Mul(lowBand).Round(2),
			Mid:      mid.Round(2),
			High:     mid.Mul(highBand).Round(2),
			Multiple: revenueFallbackMultiple,
			Basis:    entity.BasisRevenue,
			Breakdown: []entity.ValuationAdjustment{
				{Label: "revenue fallback", Factor: revenueFallbackMultiple},
			},
		}
	}

	base, ok := industryMultiples[input.Industry]
	if !ok {
		base = defaultIndustryMultiple
	}
	breakdown := []entity.ValuationAdjustment{
		{Label: "industry base", Factor: base},
		{Label: "track", Factor: trackFactor(input.Track)},
		{Label: "years operating", Factor: ageFactor(input.YearsOperating)},
		{Label: "growth", Factor: growthFactor(input.GrowthRate)},
	}

	multiple := decimal.NewFromInt(1)
	for _, adj := range breakdown {
		multiple = multiple.Mul(adj.Factor)
	}
	multiple = multiple.Round(2)
	mid := input.AnnualProfit.Mul(multiple)

	return &entity.Valuation{
		Low:       mid.Mul(lowBand).Round(2),
		Mid:       mid.Round(2),
		High:      mid.Mul(highBand).Round(2),
		Multiple:  multiple,
		Basis:     entity.BasisProfit,
		Breakdown: breakdown,
	}
}

func trackFactor(track entity.Track) decimal.Decimal {
	switch track {
	case entity.TrackDigital:
		return decimal.RequireFromString("1.1")
	case entity.TrackOperational, entity.TrackAll:
		return decimal.NewFromInt(1)
	default:
		return decimal.NewFromInt(1)
	}
}

func ageFactor(years int) decimal.Decimal {
	switch {
	case years < 2:
		return decimal.RequireFromString("0.8")
	case years < 5:
		return decimal.NewFromInt(1)
	case years < 10:
		return decimal.RequireFromString("1.1")
	default:
		return decimal.RequireFromString("1.2")
	}
}

func growthFactor(rate decimal.Decimal) decimal.Decimal {
	switch {
	case rate.IsNegative():
		return decimal.RequireFromString("0.85")
	case rate.LessThan(decimal.RequireFromString("0.1")):
		return decimal.NewFromInt(1)
	case rate.LessThan(decimal.RequireFromString("0.3")):
		return decimal.RequireFromString("1.15")
	default:
		return decimal.RequireFromString("1.3")
	}
}
