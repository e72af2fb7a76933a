package domain

import "github.com/shopspring/decimal"

// AssumptionSet describes the economics of a single retail location for a
// four-wall projection. Instances are produced by the assumptions validator
// and are never mutated afterwards.
type AssumptionSet struct {
	FloorAreaSqm      decimal.Decimal // > 0
	SalesDensity      decimal.Decimal // revenue per sqm per period, > 0
	VariableCostRatio decimal.Decimal // fraction of revenue, [0, 1]
	FixedCosts        decimal.Decimal // per period: rent, utilities, staff baseline, >= 0
	InitialInvestment decimal.Decimal // capital outlay recovered by cumulative cashflow, >= 0
	Periods           int             // projection horizon, >= 1
	GrowthRate        decimal.Decimal // period-over-period drift of SalesDensity, may be negative
}
