package api

import "encoding/json"

// EvaluateRequest carries raw assumption values as JSON numbers; domain
// checks happen in the validator, not at decode time.
type EvaluateRequest struct {
	FloorAreaSqm      json.Number `json:"floor_area_sqm"`
	SalesDensity      json.Number `json:"sales_density"`
	VariableCostRatio json.Number `json:"variable_cost_ratio"`
	FixedCosts        json.Number `json:"fixed_costs"`
	InitialInvestment json.Number `json:"initial_investment"`
	Periods           json.Number `json:"periods"`
	GrowthRate        json.Number `json:"growth_rate"`
}

// Monetary values are rendered as fixed-point strings; rounding happens
// only here, never inside the model.
type PeriodResult struct {
	PeriodIndex        int    `json:"period_index"`
	Revenue            string `json:"revenue"`
	VariableCosts      string `json:"variable_costs"`
	FixedCosts         string `json:"fixed_costs"`
	EBITDA             string `json:"ebitda"`
	CumulativeCashflow string `json:"cumulative_cashflow"`
}

// Nullable metrics render as JSON null when undefined so clients can show
// "n/a" instead of a misleading zero.
type EvaluateResponse struct {
	Periods          []PeriodResult `json:"periods"`
	BreakEvenPeriod  *int           `json:"break_even_period"`
	PaybackPeriod    *string        `json:"payback_period"`
	ROI              *string        `json:"roi"`
	BreakEvenRevenue *string        `json:"break_even_revenue"`
	TotalRevenue     string         `json:"total_revenue"`
	TotalEBITDA      string         `json:"total_ebitda"`
	Verdict          string         `json:"verdict"`
	Reasons          []string       `json:"reasons"`
}

type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Value      string `json:"value"`
}

type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}
