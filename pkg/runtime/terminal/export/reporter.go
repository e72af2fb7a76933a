package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/andrearuggiero83/StorePilot/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type TableConfig struct {
	PeriodWidth int
	ValueWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		PeriodWidth: 8,
		ValueWidth:  16,
	}
}

// Reporter prints an evaluation as a plain-text P&L projection.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(ev *domain.Evaluation) error {
	funcMap := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"optMoney": func(d *decimal.Decimal) string {
			if d == nil {
				return "n/a"
			}
			return d.StringFixed(2)
		},
		"optRatio": func(d *decimal.Decimal) string {
			if d == nil {
				return "n/a"
			}
			return d.StringFixed(4)
		},
		"optPeriod": func(p *int) string {
			if p == nil {
				return "n/a"
			}
			return fmt.Sprintf("%d", *p)
		},
		"row": func(period int, values ...decimal.Decimal) string {
			cells := make([]string, 0, len(values)+1)
			cells = append(cells, fmt.Sprintf("%-*d", c.config.PeriodWidth, period))
			for _, v := range values {
				cells = append(cells, fmt.Sprintf("%*s", c.config.ValueWidth, v.StringFixed(2)))
			}
			return "| " + strings.Join(cells, " | ") + " |"
		},
		"header": func(names ...string) string {
			cells := make([]string, 0, len(names))
			cells = append(cells, fmt.Sprintf("%-*s", c.config.PeriodWidth, names[0]))
			for _, n := range names[1:] {
				cells = append(cells, fmt.Sprintf("%*s", c.config.ValueWidth, n))
			}
			return "| " + strings.Join(cells, " | ") + " |"
		},
		"separator": func(columns int) string {
			parts := make([]string, 0, columns)
			parts = append(parts, strings.Repeat("-", c.config.PeriodWidth+2))
			for i := 1; i < columns; i++ {
				parts = append(parts, strings.Repeat("-", c.config.ValueWidth+2))
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl := `
Four-Wall Projection ({{len .Projection.Periods}} periods)

{{separator 6}}
{{header "Period" "Revenue" "Variable" "Fixed" "EBITDA" "Cumulative"}}
{{separator 6}}
{{range .Projection.Periods -}}
{{row .PeriodIndex .Revenue .VariableCosts .FixedCosts .EBITDA .CumulativeCashflow}}
{{end -}}
{{separator 6}}

Total revenue:      {{money .Projection.TotalRevenue}}
Total EBITDA:       {{money .Projection.TotalEBITDA}}
Break-even period:  {{optPeriod .Projection.BreakEvenPeriod}}
Payback period:     {{optRatio .Projection.PaybackPeriod}}
ROI:                {{optRatio .Projection.ROI}}
Break-even revenue: {{optMoney .Projection.BreakEvenRevenue}}

Verdict: {{.Assessment.Verdict}}
{{range .Assessment.Reasons -}}
- {{.}}
{{end -}}
`

	t, err := template.New("evaluation").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, ev)
}
