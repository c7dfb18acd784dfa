package commands

import (
	"context"

	reportsvc "github.com/commerce-tools/marketlens/pkg/services/report"
)

// Dependencies defers construction of the store and runner to the caller,
// so tests can substitute in-memory implementations while cmd/cli wires
// the real DuckDB store and SQL engines.
type Dependencies struct {
	OpenStore func(ctx context.Context, dbPath string) (reportsvc.Store, error)
	NewRunner func(ctx context.Context, store reportsvc.Store, enginesCfgPath string) (*reportsvc.Runner, error)
}
