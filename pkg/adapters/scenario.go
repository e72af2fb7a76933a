package adapters

import (
	"github.com/andrearuggiero83/StorePilot/pkg/models/api"
	"github.com/andrearuggiero83/StorePilot/pkg/models/domain"
	"github.com/andrearuggiero83/StorePilot/pkg/services/assumptions"
	"github.com/shopspring/decimal"
)

const (
	moneyPlaces = 2
	ratioPlaces = 4
)

func MapEvaluateRequestToRaw(req api.EvaluateRequest) assumptions.Raw {
	return assumptions.Raw{
		FloorAreaSqm:      req.FloorAreaSqm.String(),
		SalesDensity:      req.SalesDensity.String(),
		VariableCostRatio: req.VariableCostRatio.String(),
		FixedCosts:        req.FixedCosts.String(),
		InitialInvestment: req.InitialInvestment.String(),
		Periods:           req.Periods.String(),
		GrowthRate:        req.GrowthRate.String(),
	}
}

func MapEvaluationDomainToApi(ev *domain.Evaluation) api.EvaluateResponse {
	proj := ev.Projection

	periods := make([]api.PeriodResult, 0, len(proj.Periods))
	for _, p := range proj.Periods {
		periods = append(periods, api.PeriodResult{
			PeriodIndex:        p.PeriodIndex,
			Revenue:            p.Revenue.StringFixed(moneyPlaces),
			VariableCosts:      p.VariableCosts.StringFixed(moneyPlaces),
			FixedCosts:         p.FixedCosts.StringFixed(moneyPlaces),
			EBITDA:             p.EBITDA.StringFixed(moneyPlaces),
			CumulativeCashflow: p.CumulativeCashflow.StringFixed(moneyPlaces),
		})
	}

	return api.EvaluateResponse{
		Periods:          periods,
		BreakEvenPeriod:  proj.BreakEvenPeriod,
		PaybackPeriod:    fixedString(proj.PaybackPeriod, ratioPlaces),
		ROI:              fixedString(proj.ROI, ratioPlaces),
		BreakEvenRevenue: fixedString(proj.BreakEvenRevenue, moneyPlaces),
		TotalRevenue:     proj.TotalRevenue.StringFixed(moneyPlaces),
		TotalEBITDA:      proj.TotalEBITDA.StringFixed(moneyPlaces),
		Verdict:          string(ev.Assessment.Verdict),
		Reasons:          ev.Assessment.Reasons,
	}
}

func MapValidationErrorToApi(verr *assumptions.ValidationError) api.ValidationErrorResponse {
	fields := make([]api.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, api.FieldError{
			Field:      f.Field,
			Constraint: f.Constraint,
			Value:      f.Value,
		})
	}
	return api.ValidationErrorResponse{
		Error:  "invalid assumptions",
		Fields: fields,
	}
}

func fixedString(d *decimal.Decimal, places int32) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(places)
	return &s
}
