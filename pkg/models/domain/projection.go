package domain

import "github.com/shopspring/decimal"

// PeriodResult is one projected period of the four-wall model.
type PeriodResult struct {
	PeriodIndex        int
	Revenue            decimal.Decimal
	VariableCosts      decimal.Decimal
	FixedCosts         decimal.Decimal
	EBITDA             decimal.Decimal // Revenue - VariableCosts - FixedCosts
	CumulativeCashflow decimal.Decimal // running EBITDA sum, seeded at -InitialInvestment
}

// Projection is the full output of one model evaluation. Optional metrics
// are nil when undefined: BreakEvenPeriod and PaybackPeriod when cumulative
// cashflow never reaches zero within the horizon, ROI when the initial
// investment is zero, BreakEvenRevenue when the contribution margin is zero.
type Projection struct {
	Periods          []PeriodResult
	BreakEvenPeriod  *int             // first period with CumulativeCashflow >= 0
	PaybackPeriod    *decimal.Decimal // fractional break-even via linear interpolation
	ROI              *decimal.Decimal // (total EBITDA - investment) / investment
	BreakEvenRevenue *decimal.Decimal // per-period revenue covering fixed costs
	TotalRevenue     decimal.Decimal
	TotalEBITDA      decimal.Decimal
}
