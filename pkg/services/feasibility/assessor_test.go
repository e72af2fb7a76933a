package feasibility

import (
	"testing"

	"github.com/andrearuggiero83/StorePilot/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// projection with a given total revenue and EBITDA; period rows are not
// inspected by the assessor.
func projectionWith(revenue, ebitda string) domain.Projection {
	return domain.Projection{
		TotalRevenue: dec(revenue),
		TotalEBITDA:  dec(ebitda),
	}
}

func TestAssessVerdicts(t *testing.T) {
	tests := []struct {
		name        string
		set         domain.AssumptionSet
		proj        domain.Projection
		wantVerdict domain.Verdict
	}{
		{
			name: "strong margins and low rent",
			set: domain.AssumptionSet{
				VariableCostRatio: dec("0.3"),
				FixedCosts:        dec("1000"),
				Periods:           12,
			},
			proj:        projectionWith("120000", "24000"), // margin 20%, occupancy 10%
			wantVerdict: domain.VerdictGo,
		},
		{
			name: "decent margin but heavy rent",
			set: domain.AssumptionSet{
				VariableCostRatio: dec("0.3"),
				FixedCosts:        dec("2000"),
				Periods:           12,
			},
			proj:        projectionWith("120000", "24000"), // occupancy 20%
			wantVerdict: domain.VerdictReview,
		},
		{
			name: "thin contribution margin blocks go",
			set: domain.AssumptionSet{
				VariableCostRatio: dec("0.7"),
				FixedCosts:        dec("1000"),
				Periods:           12,
			},
			proj:        projectionWith("120000", "24000"),
			wantVerdict: domain.VerdictReview,
		},
		{
			name: "borderline margin",
			set: domain.AssumptionSet{
				VariableCostRatio: dec("0.3"),
				FixedCosts:        dec("1000"),
				Periods:           12,
			},
			proj:        projectionWith("120000", "12000"), // margin 10%
			wantVerdict: domain.VerdictReview,
		},
		{
			name: "losing money",
			set: domain.AssumptionSet{
				VariableCostRatio: dec("0.5"),
				FixedCosts:        dec("4000"),
				Periods:           12,
			},
			proj:        projectionWith("60000", "-18000"),
			wantVerdict: domain.VerdictNoGo,
		},
		{
			name: "margin at go threshold",
			set: domain.AssumptionSet{
				VariableCostRatio: dec("0.4"),
				FixedCosts:        dec("1000"),
				Periods:           12,
			},
			proj:        projectionWith("120000", "18000"), // margin exactly 15%
			wantVerdict: domain.VerdictGo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAssessor().Assess(tt.set, tt.proj)

			assert.Equal(t, tt.wantVerdict, got.Verdict)
			require.Len(t, got.Reasons, 3)
			for _, r := range got.Reasons {
				assert.NotEmpty(t, r)
			}
		})
	}
}

func TestAssessZeroRevenue(t *testing.T) {
	set := domain.AssumptionSet{
		VariableCostRatio: dec("0.3"),
		FixedCosts:        dec("2000"),
		Periods:           6,
	}

	got := NewAssessor().Assess(set, projectionWith("0", "0"))

	assert.Equal(t, domain.VerdictNoGo, got.Verdict)
}

func TestAssessReasonsMentionBands(t *testing.T) {
	set := domain.AssumptionSet{
		VariableCostRatio: dec("0.3"),
		FixedCosts:        dec("1000"),
		Periods:           12,
	}

	got := NewAssessor().Assess(set, projectionWith("120000", "24000"))

	assert.Contains(t, got.Reasons[0], "EBITDA margin 20.0%")
	assert.Contains(t, got.Reasons[1], "occupancy 10.0%")
	assert.Contains(t, got.Reasons[2], "contribution margin 70.0%")
}
