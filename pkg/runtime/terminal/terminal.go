package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/commerce-tools/marketlens/pkg/runtime/terminal/commands"
	"github.com/commerce-tools/marketlens/pkg/runtime/terminal/printer"
)

// CLI represents the command-line interface
type CLI struct {
	deps     commands.Dependencies
	reporter *printer.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Dependencies commands.Dependencies
	Output       io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		deps:     opts.Dependencies,
		reporter: printer.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marketlens",
		Short: "Marketing report processing tool",
	}

	cmd.AddCommand(commands.NewProcessCmd(cli.deps, cli.reporter))
	cmd.AddCommand(commands.NewReportsCmd(cli.deps, cli.reporter))

	return cmd
}
