package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ValuationUsecase estimates what a business could sell for.
type ValuationUsecase interface {
	// Estimate returns a price range. The adjustment breakdown is included only for users
	// holding the valuation report entitlement.
	Estimate(ctx context.Context, identity *entity.Identity, input *ValuationInput) (*entity.Valuation, error)
}

// ValuationInput is the payload for a valuation estimate.
type ValuationInput struct {
	Industry       string          `json:"industry" validate:"required,max=100"`
	Track          string          `json:"track" validate:"omitempty,oneof=all operational digital"`
	AnnualRevenue  decimal.Decimal `json:"annual_revenue"`
	AnnualProfit   decimal.Decimal `json:"annual_profit"`
	YearsOperating int             `json:"years_operating" validate:"gte=0,lte=200"`
	GrowthRate     decimal.Decimal `json:"growth_rate"`
}
