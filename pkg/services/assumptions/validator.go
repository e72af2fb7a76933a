package assumptions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrearuggiero83/StorePilot/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Raw carries unparsed field values as received from the presentation
// layer. Parsing and domain checks happen in Validate, never upstream.
type Raw struct {
	FloorAreaSqm      string
	SalesDensity      string
	VariableCostRatio string
	FixedCosts        string
	InitialInvestment string
	Periods           string
	GrowthRate        string
}

// FieldError names one violated constraint on one input field.
type FieldError struct {
	Field      string
	Constraint string
	Value      string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s %s, got %q", e.Field, e.Constraint, e.Value)
}

// ValidationError collects every violation found in a Raw input so the
// caller can fix all fields in one pass.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("invalid assumptions: %s", strings.Join(msgs, "; "))
}

// Validate parses and checks every field of raw against its domain and
// returns an immutable AssumptionSet, or a ValidationError listing all
// violations. It never clamps an out-of-domain value.
func Validate(raw Raw) (domain.AssumptionSet, error) {
	var (
		set  domain.AssumptionSet
		verr ValidationError
	)

	set.FloorAreaSqm = parsePositive(&verr, "floor_area_sqm", raw.FloorAreaSqm)
	set.SalesDensity = parsePositive(&verr, "sales_density", raw.SalesDensity)
	set.VariableCostRatio = parseUnitRatio(&verr, "variable_cost_ratio", raw.VariableCostRatio)
	set.FixedCosts = parseNonNegative(&verr, "fixed_costs", raw.FixedCosts)
	set.InitialInvestment = parseNonNegative(&verr, "initial_investment", raw.InitialInvestment)
	set.Periods = parsePeriods(&verr, raw.Periods)
	set.GrowthRate = parseDecimal(&verr, "growth_rate", raw.GrowthRate)

	if len(verr.Fields) > 0 {
		return domain.AssumptionSet{}, &verr
	}
	return set, nil
}

func parseDecimal(verr *ValidationError, field, value string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		verr.Fields = append(verr.Fields, FieldError{
			Field:      field,
			Constraint: "must be a decimal number",
			Value:      value,
		})
		return decimal.Zero
	}
	return d
}

func parsePositive(verr *ValidationError, field, value string) decimal.Decimal {
	before := len(verr.Fields)
	d := parseDecimal(verr, field, value)
	if len(verr.Fields) > before {
		return d
	}
	if !d.IsPositive() {
		verr.Fields = append(verr.Fields, FieldError{
			Field:      field,
			Constraint: "must be greater than 0",
			Value:      value,
		})
	}
	return d
}

func parseNonNegative(verr *ValidationError, field, value string) decimal.Decimal {
	before := len(verr.Fields)
	d := parseDecimal(verr, field, value)
	if len(verr.Fields) > before {
		return d
	}
	if d.IsNegative() {
		verr.Fields = append(verr.Fields, FieldError{
			Field:      field,
			Constraint: "must be greater than or equal to 0",
			Value:      value,
		})
	}
	return d
}

func parseUnitRatio(verr *ValidationError, field, value string) decimal.Decimal {
	before := len(verr.Fields)
	d := parseDecimal(verr, field, value)
	if len(verr.Fields) > before {
		return d
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		verr.Fields = append(verr.Fields, FieldError{
			Field:      field,
			Constraint: "must be within [0,1]",
			Value:      value,
		})
	}
	return d
}

func parsePeriods(verr *ValidationError, value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		verr.Fields = append(verr.Fields, FieldError{
			Field:      "periods",
			Constraint: "must be an integer",
			Value:      value,
		})
		return 0
	}
	if n < 1 {
		verr.Fields = append(verr.Fields, FieldError{
			Field:      "periods",
			Constraint: "must be at least 1",
			Value:      value,
		})
	}
	return n
}
