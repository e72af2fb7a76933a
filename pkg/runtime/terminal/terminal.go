package terminal

import (
	"io"
	"os"

	"github.com/andrearuggiero83/StorePilot/pkg/runtime/terminal/commands"
	"github.com/andrearuggiero83/StorePilot/pkg/runtime/terminal/export"
	"github.com/andrearuggiero83/StorePilot/pkg/services/scenario"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	scenarios scenario.Controller
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Scenarios scenario.Controller
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		scenarios: opts.Scenarios,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storepilot",
		Short: "Four-wall viability analysis for a single retail location",
	}

	cmd.AddCommand(commands.NewEvaluateCmd(cli.scenarios, cli.reporter))

	return cmd
}
