package scenariofile

import (
	"fmt"

	"github.com/andrearuggiero83/StorePilot/pkg/services/assumptions"
	"github.com/spf13/viper"
)

// Load reads raw assumption values from a scenario file (YAML or JSON).
// It only parses the file; domain validation stays with the validator so
// a bad value in a file is reported the same way as a bad value over HTTP.
func Load(path string) (assumptions.Raw, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return assumptions.Raw{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	return assumptions.Raw{
		FloorAreaSqm:      v.GetString("floor_area_sqm"),
		SalesDensity:      v.GetString("sales_density"),
		VariableCostRatio: v.GetString("variable_cost_ratio"),
		FixedCosts:        v.GetString("fixed_costs"),
		InitialInvestment: v.GetString("initial_investment"),
		Periods:           v.GetString("periods"),
		GrowthRate:        v.GetString("growth_rate"),
	}, nil
}
