package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commerce-tools/marketlens/pkg/runtime/terminal/printer"
	reportsvc "github.com/commerce-tools/marketlens/pkg/services/report"
)

// NewProcessCmd runs a full processing pass over one report, printing
// per-section progress.
func NewProcessCmd(deps Dependencies, reporter *printer.Reporter) *cobra.Command {
	var (
		dbPath  string
		cfgPath string
	)

	cmd := &cobra.Command{
		Use:   "process <report-id>",
		Short: "Run all section queries of a report and refresh its chart data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := deps.OpenStore(ctx, dbPath)
			if err != nil {
				return fmt.Errorf("open report store: %w", err)
			}

			runner, err := deps.NewRunner(ctx, store, cfgPath)
			if err != nil {
				return fmt.Errorf("build runner: %w", err)
			}
			runner.OnProgress = func(p reportsvc.Progress) {
				reporter.Progress(p.Current, p.Total, p.SectionID)
			}

			result, err := runner.ProcessReport(ctx, args[0])
			if err != nil {
				return err
			}
			return reporter.HandleRunResult(result)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "marketlens.db", "Path to the embedded report database")
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "engines.ini", "Path to the engine profiles file")
	return cmd
}
