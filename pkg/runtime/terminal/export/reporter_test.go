package export

import (
	"bytes"
	"testing"

	"github.com/andrearuggiero83/StorePilot/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvaluation() *domain.Evaluation {
	breakEven := 6
	payback := decimal.RequireFromString("5.6667")
	roi := decimal.RequireFromString("0.8")
	beRevenue := decimal.RequireFromString("2857.142857")

	return &domain.Evaluation{
		Projection: domain.Projection{
			Periods: []domain.PeriodResult{
				{
					PeriodIndex:        0,
					Revenue:            decimal.RequireFromString("5000"),
					VariableCosts:      decimal.RequireFromString("1500"),
					FixedCosts:         decimal.RequireFromString("2000"),
					EBITDA:             decimal.RequireFromString("1500"),
					CumulativeCashflow: decimal.RequireFromString("-8500"),
				},
				{
					PeriodIndex:        1,
					Revenue:            decimal.RequireFromString("5000"),
					VariableCosts:      decimal.RequireFromString("1500"),
					FixedCosts:         decimal.RequireFromString("2000"),
					EBITDA:             decimal.RequireFromString("1500"),
					CumulativeCashflow: decimal.RequireFromString("-7000"),
				},
			},
			BreakEvenPeriod:  &breakEven,
			PaybackPeriod:    &payback,
			ROI:              &roi,
			BreakEvenRevenue: &beRevenue,
			TotalRevenue:     decimal.RequireFromString("60000"),
			TotalEBITDA:      decimal.RequireFromString("18000"),
		},
		Assessment: domain.Assessment{
			Verdict: domain.VerdictReview,
			Reasons: []string{"EBITDA margin 30.0% is at or above 18%: robust profitability"},
		},
	}
}

func TestReporterHandle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Handle(sampleEvaluation()))

	out := buf.String()
	assert.Contains(t, out, "Four-Wall Projection (2 periods)")
	assert.Contains(t, out, "5000.00")
	assert.Contains(t, out, "-8500.00")
	assert.Contains(t, out, "Break-even period:  6")
	assert.Contains(t, out, "Payback period:     5.6667")
	assert.Contains(t, out, "ROI:                0.8000")
	assert.Contains(t, out, "Break-even revenue: 2857.14")
	assert.Contains(t, out, "Verdict: REVIEW")
	assert.Contains(t, out, "robust profitability")
}

func TestReporterHandleUndefinedMetrics(t *testing.T) {
	ev := sampleEvaluation()
	ev.Projection.BreakEvenPeriod = nil
	ev.Projection.PaybackPeriod = nil
	ev.Projection.ROI = nil
	ev.Projection.BreakEvenRevenue = nil

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(ev))

	out := buf.String()
	assert.Contains(t, out, "Break-even period:  n/a")
	assert.Contains(t, out, "Payback period:     n/a")
	assert.Contains(t, out, "ROI:                n/a")
	assert.Contains(t, out, "Break-even revenue: n/a")
}
