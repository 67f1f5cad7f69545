package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateValuation(t *testing.T) {
	tests := []struct {
		name         string
		input        entity.ValuationInput
		wantBasis    entity.ValuationBasis
		wantMultiple string
		wantMid      string
		wantLow      string
		wantHigh     string
	}{
		{
			name: "profitable saas",
			input: entity.ValuationInput{
				Industry:       "saas",
				Track:          entity.TrackDigital,
				AnnualRevenue:  decimal.NewFromInt(500000),
				AnnualProfit:   decimal.NewFromInt(100000),
				YearsOperating: 6,
				GrowthRate:     decimal.RequireFromString("0.2"),
			},
			wantBasis: entity.BasisProfit,
			// 4.0 * 1.1 * 1.1 * 1.15 = 5.566 -> 5.57
			wantMultiple: "5.57",
			wantMid:      "557000",
			wantLow:      "445600",
			wantHigh:     "668400",
		},
		{
			name: "young shrinking restaurant",
			input: entity.ValuationInput{
				Industry:       "restaurant",
				Track:          entity.TrackOperational,
				AnnualRevenue:  decimal.NewFromInt(800000),
				AnnualProfit:   decimal.NewFromInt(50000),
				YearsOperating: 1,
				GrowthRate:     decimal.RequireFromString("-0.05"),
			},
			wantBasis: entity.BasisProfit,
			// 2.0 * 1 * 0.8 * 0.85 = 1.36
			wantMultiple: "1.36",
			wantMid:      "68000",
			wantLow:      "54400",
			wantHigh:     "81600",
		},
		{
			name: "unknown industry uses default",
			input: entity.ValuationInput{
				Industry:       "llama farming",
				Track:          entity.TrackAll,
				AnnualProfit:   decimal.NewFromInt(10000),
				YearsOperating: 3,
			},
			wantBasis:    entity.BasisProfit,
			wantMultiple: "2.5",
			wantMid:      "25000",
			wantLow:      "20000",
			wantHigh:     "30000",
		},
		{
			name: "loss making falls back to revenue",
			input: entity.ValuationInput{
				Industry:      "saas",
				AnnualRevenue: decimal.NewFromInt(120000),
				AnnualProfit:  decimal.NewFromInt(-20000),
			},
			wantBasis:    entity.BasisRevenue,
			wantMultiple: "0.5",
			wantMid:      "60000",
			wantLow:      "48000",
			wantHigh:     "72000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateValuation(tt.input)

			assert.Equal(t, tt.wantBasis, got.Basis)
			assert.True(t, got.Multiple.Equal(decimal.RequireFromString(tt.wantMultiple)), "multiple %s", got.Multiple)
			assert.True(t, got.Mid.Equal(decimal.RequireFromString(tt.wantMid)), "mid %s", got.Mid)
			assert.True(t, got.Low.Equal(decimal.RequireFromString(tt.wantLow)), "low %s", got.Low)
			assert.True(t, got.High.Equal(decimal.RequireFromString(tt.wantHigh)), "high %s", got.High)
			assert.NotEmpty(t, got.Breakdown)
		})
	}
}

func TestValuationService_Estimate_BreakdownNeedsReport(t *testing.T) {
	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New()}
	input := &usecase.ValuationInput{
		Industry:      "SaaS",
		Track:         "digital",
		AnnualRevenue: decimal.NewFromInt(300000),
		AnnualProfit:  decimal.NewFromInt(60000),
	}

	tests := []struct {
		name          string
		hasReport     bool
		wantBreakdown bool
	}{
		{"free plan", false, false},
		{"pro plan", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entitlements := mockUsecase.NewMockEntitlementUsecase(t)
			entitlements.EXPECT().RequireEntitlement(ctx, identity, entity.EntitlementBasicValuation).
				Return(entity.EntitlementResult{HasAccess: true}, nil)
			entitlements.EXPECT().CheckEntitlement(ctx, identity.ID, entity.EntitlementValuationReport).
				Return(entity.EntitlementResult{HasAccess: tt.hasReport})

			srv := NewValuationService(ValuationServiceParams{Entitlements: entitlements, Logger: newDiscardLogger()})
			valuation, err := srv.Estimate(ctx, identity, input)

			require.NoError(t, err)
			assert.Equal(t, entity.BasisProfit, valuation.Basis)
			assert.Equal(t, tt.wantBreakdown, len(valuation.Breakdown) > 0)
		})
	}
}

func TestValuationService_Estimate_Rejections(t *testing.T) {
	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New()}

	t.Run("no session", func(t *testing.T) {
		entitlements := mockUsecase.NewMockEntitlementUsecase(t)
		entitlements.EXPECT().RequireEntitlement(ctx, (*entity.Identity)(nil), entity.EntitlementBasicValuation).
			Return(entity.EntitlementResult{}, domainerrors.ErrUnauthenticated)

		srv := NewValuationService(ValuationServiceParams{Entitlements: entitlements, Logger: newDiscardLogger()})
		_, err := srv.Estimate(ctx, nil, &usecase.ValuationInput{Industry: "saas"})

		require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("no figures", func(t *testing.T) {
		entitlements := mockUsecase.NewMockEntitlementUsecase(t)
		entitlements.EXPECT().RequireEntitlement(ctx, identity, entity.EntitlementBasicValuation).
			Return(entity.EntitlementResult{HasAccess: true}, nil)

		srv := NewValuationService(ValuationServiceParams{Entitlements: entitlements, Logger: newDiscardLogger()})
		_, err := srv.Estimate(ctx, identity, &usecase.ValuationInput{Industry: "saas"})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing industry", func(t *testing.T) {
		entitlements := mockUsecase.NewMockEntitlementUsecase(t)
		entitlements.EXPECT().RequireEntitlement(ctx, identity, entity.EntitlementBasicValuation).
			Return(entity.EntitlementResult{HasAccess: true}, nil)

		srv := NewValuationService(ValuationServiceParams{Entitlements: entitlements, Logger: newDiscardLogger()})
		_, err := srv.Estimate(ctx, identity, &usecase.ValuationInput{AnnualProfit: decimal.NewFromInt(1)})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
