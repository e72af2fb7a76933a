package main

import (
	"fmt"
	"os"

	"github.com/andrearuggiero83/StorePilot/pkg/runtime/terminal"
	"github.com/andrearuggiero83/StorePilot/pkg/services/feasibility"
	"github.com/andrearuggiero83/StorePilot/pkg/services/model"
	"github.com/andrearuggiero83/StorePilot/pkg/services/scenario"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Scenarios: scenario.NewController(model.NewEngine(), feasibility.NewAssessor()),
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
