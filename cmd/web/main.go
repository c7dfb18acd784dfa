package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/commerce-tools/marketlens/pkg/server"
	"github.com/commerce-tools/marketlens/pkg/services/config"
	reportsvc "github.com/commerce-tools/marketlens/pkg/services/report"
	"github.com/commerce-tools/marketlens/pkg/services/sections"
	"github.com/commerce-tools/marketlens/pkg/store/bigquery"
	"github.com/commerce-tools/marketlens/pkg/store/clickhouse"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
	pgreport "github.com/commerce-tools/marketlens/pkg/store/postgres/report"
	"google.golang.org/api/option"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the MarketLens web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "engines.ini",
		"Path to the engine profiles file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	viper.SetEnvPrefix("marketlens")
	viper.AutomaticEnv()
	viper.SetDefault("server_host", "0.0.0.0")
	viper.SetDefault("server_port", "8080")

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load engine profiles: %w", err)
	}

	profiles, _ := registry.GetProfiles(ctx)
	logger.Info().Msgf("Engine profiles found at `%s`: %v", cfgPath, profiles)

	engines := engine.StaticResolver{}

	if bqCfg, err := registry.BigQuery(ctx); err == nil {
		var opts []option.ClientOption
		if bqCfg.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(bqCfg.CredentialsFile))
		}
		bq, err := bigquery.NewExecutor(ctx, bqCfg.Project, opts...)
		if err != nil {
			return fmt.Errorf("failed to create BigQuery executor: %w", err)
		}
		engines["bigquery"] = bq
	}

	if chCfg, err := registry.ClickHouse(ctx); err == nil {
		ch, err := clickhouse.NewExecutor(*chCfg)
		if err != nil {
			return fmt.Errorf("failed to create ClickHouse executor: %w", err)
		}
		engines["clickhouse"] = ch
	}

	if len(engines) == 0 {
		return fmt.Errorf("no SQL engines configured in %s", cfgPath)
	}

	dsn := viper.GetString("database_url")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := pgreport.Open(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to report database: %w", err)
	}

	store, err := pgreport.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	runner := reportsvc.NewRunner(store, engines, sections.NewRegistry())

	mux := server.ConfigureRouter(server.Config{
		Dependencies: server.Dependencies{
			Store:     store,
			Processor: runner,
			Logger:    logger,
		},
	})

	addr := net.JoinHostPort(viper.GetString("server_host"), viper.GetString("server_port"))
	logger.Info().Msgf("starting server on %s", addr)

	return http.ListenAndServe(addr, mux)
}
