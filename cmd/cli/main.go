package main

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"

	"github.com/commerce-tools/marketlens/pkg/runtime/terminal"
	"github.com/commerce-tools/marketlens/pkg/runtime/terminal/commands"
	"github.com/commerce-tools/marketlens/pkg/services/config"
	reportsvc "github.com/commerce-tools/marketlens/pkg/services/report"
	"github.com/commerce-tools/marketlens/pkg/services/sections"
	"github.com/commerce-tools/marketlens/pkg/store/bigquery"
	"github.com/commerce-tools/marketlens/pkg/store/clickhouse"
	"github.com/commerce-tools/marketlens/pkg/store/duckdb"
	duckdbreport "github.com/commerce-tools/marketlens/pkg/store/duckdb/report"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Dependencies: commands.Dependencies{
			OpenStore: openStore,
			NewRunner: newRunner,
		},
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openStore(_ context.Context, dbPath string) (reportsvc.Store, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return nil, err
	}
	return duckdbreport.NewStore(db)
}

func newRunner(ctx context.Context, store reportsvc.Store, cfgPath string) (*reportsvc.Runner, error) {
	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load engine profiles: %w", err)
	}

	engines := engine.StaticResolver{}

	if bqCfg, err := registry.BigQuery(ctx); err == nil {
		var opts []option.ClientOption
		if bqCfg.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(bqCfg.CredentialsFile))
		}
		bq, err := bigquery.NewExecutor(ctx, bqCfg.Project, opts...)
		if err != nil {
			return nil, err
		}
		engines["bigquery"] = bq
	}

	if chCfg, err := registry.ClickHouse(ctx); err == nil {
		ch, err := clickhouse.NewExecutor(*chCfg)
		if err != nil {
			return nil, err
		}
		engines["clickhouse"] = ch
	}

	if len(engines) == 0 {
		return nil, fmt.Errorf("no SQL engines configured in %s", cfgPath)
	}

	return reportsvc.NewRunner(store, engines, sections.NewRegistry()), nil
}
