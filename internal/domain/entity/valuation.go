// Package entity contains the core business objects of the project.
package entity

import "github.com/shopspring/decimal"

// ValuationInput holds the figures a seller supplies for an estimate.
type ValuationInput struct {
	Industry       string
	Track          Track
	AnnualRevenue  decimal.Decimal
	AnnualProfit   decimal.Decimal
	YearsOperating int
	GrowthRate     decimal.Decimal // Year over year revenue growth as a fraction, e.g. 0.25.
}

// ValuationBasis names the figure the estimate was derived from.
type ValuationBasis string

const (
	BasisProfit  ValuationBasis = "profit_multiple"
	BasisRevenue ValuationBasis = "revenue_multiple"
)

// ValuationAdjustment is one step of the multiple computation.
type ValuationAdjustment struct {
	Label  string          `json:"label"`
	Factor decimal.Decimal `json:"factor"`
}

// Valuation is an estimated price range.
type Valuation struct {
	Low       decimal.Decimal       `json:"low"`
	Mid       decimal.Decimal       `json:"mid"`
	High      decimal.Decimal       `json:"high"`
	Multiple  decimal.Decimal       `json:"multiple"`
	Basis     ValuationBasis        `json:"basis"`
	Breakdown []ValuationAdjustment `json:"breakdown,omitempty"`
}
