package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commerce-tools/marketlens/pkg/runtime/terminal/printer"
)

// NewReportsCmd lists the reports in the local store.
func NewReportsCmd(deps Dependencies, reporter *printer.Reporter) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "List stored reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := deps.OpenStore(ctx, dbPath)
			if err != nil {
				return fmt.Errorf("open report store: %w", err)
			}

			reports, err := store.List(ctx)
			if err != nil {
				return err
			}
			return reporter.HandleReportList(reports)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "marketlens.db", "Path to the embedded report database")
	return cmd
}
