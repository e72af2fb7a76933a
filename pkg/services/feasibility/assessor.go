// Package feasibility grades a projection into a GO / REVIEW / NO_GO
// verdict from three ratios: EBITDA margin over the horizon, occupancy
// (fixed costs over revenue) and contribution margin.
package feasibility

import (
	"fmt"

	"github.com/andrearuggiero83/StorePilot/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type Assessor interface {
	Assess(set domain.AssumptionSet, proj domain.Projection) domain.Assessment
}

type assessor struct{}

func NewAssessor() Assessor {
	return assessor{}
}

var (
	marginWeak     = decimal.NewFromFloat(0.08)
	marginBorder   = decimal.NewFromFloat(0.12)
	marginReview   = decimal.NewFromFloat(0.10)
	marginGo       = decimal.NewFromFloat(0.15)
	marginStrong   = decimal.NewFromFloat(0.18)
	occupancyLow   = decimal.NewFromFloat(0.10)
	occupancyGo    = decimal.NewFromFloat(0.12)
	occupancyHigh  = decimal.NewFromFloat(0.14)
	contribWeak    = decimal.NewFromFloat(0.35)
	contribGo      = decimal.NewFromFloat(0.40)
	contribHealthy = decimal.NewFromFloat(0.45)
)

func (assessor) Assess(set domain.AssumptionSet, proj domain.Projection) domain.Assessment {
	margin := ebitdaMargin(proj)
	occupancy := occupancyRatio(set, proj)
	contribution := decimal.NewFromInt(1).Sub(set.VariableCostRatio)

	reasons := []string{
		marginReason(margin),
		occupancyReason(occupancy),
		contributionReason(contribution),
	}

	verdict := domain.VerdictNoGo
	switch {
	case margin.GreaterThanOrEqual(marginGo) &&
		occupancy.LessThanOrEqual(occupancyGo) &&
		contribution.GreaterThanOrEqual(contribGo):
		verdict = domain.VerdictGo
	case margin.GreaterThanOrEqual(marginReview):
		verdict = domain.VerdictReview
	}

	return domain.Assessment{Verdict: verdict, Reasons: reasons}
}

func ebitdaMargin(proj domain.Projection) decimal.Decimal {
	if !proj.TotalRevenue.IsPositive() {
		return decimal.Zero
	}
	return proj.TotalEBITDA.Div(proj.TotalRevenue)
}

func occupancyRatio(set domain.AssumptionSet, proj domain.Projection) decimal.Decimal {
	if !proj.TotalRevenue.IsPositive() {
		return decimal.Zero
	}
	totalFixed := set.FixedCosts.Mul(decimal.NewFromInt(int64(set.Periods)))
	return totalFixed.Div(proj.TotalRevenue)
}

func marginReason(margin decimal.Decimal) string {
	pct := formatPct(margin)
	switch {
	case margin.LessThan(marginWeak):
		return fmt.Sprintf("EBITDA margin %s is below 8%%: the cost structure is under heavy pressure", pct)
	case margin.LessThan(marginBorder):
		return fmt.Sprintf("EBITDA margin %s is between 8%% and 12%%: borderline, optimization needed", pct)
	case margin.LessThan(marginStrong):
		return fmt.Sprintf("EBITDA margin %s is between 12%% and 18%%: sustainable for most formats", pct)
	default:
		return fmt.Sprintf("EBITDA margin %s is at or above 18%%: robust profitability", pct)
	}
}

func occupancyReason(occupancy decimal.Decimal) string {
	pct := formatPct(occupancy)
	switch {
	case occupancy.LessThanOrEqual(occupancyLow):
		return fmt.Sprintf("occupancy %s is at or below 10%%: rent burden is very sustainable", pct)
	case occupancy.LessThanOrEqual(occupancyHigh):
		return fmt.Sprintf("occupancy %s is between 10%% and 14%%: acceptable level", pct)
	default:
		return fmt.Sprintf("occupancy %s is above 14%%: heavy pressure from rent and charges", pct)
	}
}

func contributionReason(contribution decimal.Decimal) string {
	pct := formatPct(contribution)
	switch {
	case contribution.LessThan(contribWeak):
		return fmt.Sprintf("contribution margin %s is below 35%%: variable costs leave little room for fixed costs", pct)
	case contribution.LessThan(contribHealthy):
		return fmt.Sprintf("contribution margin %s is between 35%% and 45%%: manageable but worth monitoring", pct)
	default:
		return fmt.Sprintf("contribution margin %s is at or above 45%%: efficient operating structure", pct)
	}
}

func formatPct(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
