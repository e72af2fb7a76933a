// Package model projects the four-wall economics of a single location.
// The variable cost ratio is held constant across periods; only the sales
// density drifts with the growth rate.
package model

import (
	"github.com/andrearuggiero83/StorePilot/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Engine derives a Projection from a validated AssumptionSet. Evaluation
// is a pure function: no state, no I/O, deterministic for equal inputs.
type Engine interface {
	Evaluate(set domain.AssumptionSet) domain.Projection
}

type engine struct{}

func NewEngine() Engine {
	return engine{}
}

var one = decimal.NewFromInt(1)

func (engine) Evaluate(set domain.AssumptionSet) domain.Projection {
	periods := make([]domain.PeriodResult, 0, set.Periods)

	growthFactor := one.Add(set.GrowthRate)
	density := set.SalesDensity
	cumulative := set.InitialInvestment.Neg()
	totalRevenue := decimal.Zero
	totalEBITDA := decimal.Zero

	for i := 0; i < set.Periods; i++ {
		revenue := density.Mul(set.FloorAreaSqm)
		variableCosts := revenue.Mul(set.VariableCostRatio)
		ebitda := revenue.Sub(variableCosts).Sub(set.FixedCosts)
		cumulative = cumulative.Add(ebitda)

		periods = append(periods, domain.PeriodResult{
			PeriodIndex:        i,
			Revenue:            revenue,
			VariableCosts:      variableCosts,
			FixedCosts:         set.FixedCosts,
			EBITDA:             ebitda,
			CumulativeCashflow: cumulative,
		})

		totalRevenue = totalRevenue.Add(revenue)
		totalEBITDA = totalEBITDA.Add(ebitda)
		density = density.Mul(growthFactor)
	}

	proj := domain.Projection{
		Periods:      periods,
		TotalRevenue: totalRevenue,
		TotalEBITDA:  totalEBITDA,
	}
	proj.BreakEvenPeriod = breakEvenPeriod(periods)
	proj.PaybackPeriod = paybackPeriod(periods, proj.BreakEvenPeriod)
	proj.ROI = roi(totalEBITDA, set.InitialInvestment)
	proj.BreakEvenRevenue = breakEvenRevenue(set)
	return proj
}

// breakEvenPeriod returns the first period index whose cumulative cashflow
// is non-negative, or nil when the horizon never reaches it. Equality
// counts as reached.
func breakEvenPeriod(periods []domain.PeriodResult) *int {
	for i := range periods {
		if !periods[i].CumulativeCashflow.IsNegative() {
			return &periods[i].PeriodIndex
		}
	}
	return nil
}

// paybackPeriod interpolates the fractional period at which cumulative
// cashflow crosses zero. Break-even at period 0 means the investment was
// covered immediately, so payback is 0.
func paybackPeriod(periods []domain.PeriodResult, breakEven *int) *decimal.Decimal {
	if breakEven == nil {
		return nil
	}
	k := *breakEven
	if k == 0 {
		zero := decimal.Zero
		return &zero
	}

	prev := periods[k-1].CumulativeCashflow
	curr := periods[k].CumulativeCashflow
	fraction := prev.Neg().Div(curr.Sub(prev))
	payback := decimal.NewFromInt(int64(k - 1)).Add(fraction)
	return &payback
}

// roi is (total EBITDA - investment) / investment, undefined when the
// investment is zero.
func roi(totalEBITDA, investment decimal.Decimal) *decimal.Decimal {
	if investment.IsZero() {
		return nil
	}
	r := totalEBITDA.Sub(investment).Div(investment)
	return &r
}

// breakEvenRevenue is the per-period revenue at which contribution covers
// fixed costs, undefined when the contribution margin is zero.
func breakEvenRevenue(set domain.AssumptionSet) *decimal.Decimal {
	margin := one.Sub(set.VariableCostRatio)
	if margin.IsZero() {
		return nil
	}
	rev := set.FixedCosts.Div(margin)
	return &rev
}
