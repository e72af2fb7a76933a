package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrearuggiero83/StorePilot/pkg/runtime/terminal/export"
	"github.com/andrearuggiero83/StorePilot/pkg/services/scenario"
	"github.com/andrearuggiero83/StorePilot/pkg/services/scenariofile"
	"github.com/spf13/cobra"
)

type EvaluateCmd struct {
	scenarioPath string
	scenarios    scenario.Controller
	reporter     *export.Reporter
}

func NewEvaluateCmd(scenarios scenario.Controller, reporter *export.Reporter) *cobra.Command {
	ec := &EvaluateCmd{scenarios: scenarios, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the four-wall viability of a scenario file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.scenarioPath, "scenario", "", "Path to the scenario file (YAML or JSON)")

	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func (ec *EvaluateCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	raw, err := scenariofile.Load(ec.scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario %q: %w", ec.scenarioPath, err)
	}

	ev, err := ec.scenarios.Evaluate(ctx, raw)
	if err != nil {
		return err
	}

	return ec.reporter.Handle(ev)
}
