package engine

import (
	"context"
	"fmt"
)

// Row is a single result row as returned by a SQL engine. Column names and
// value types vary per query; consumers coerce values as needed.
type Row map[string]any

// Executor runs a SQL query against one engine and returns its rows.
// Query parameters are bound with the engine's native mechanism, never
// interpolated into the SQL text.
type Executor interface {
	Run(ctx context.Context, query string, params map[string]any) ([]Row, error)
}

// Resolver maps an engine name (e.g. "bigquery", "clickhouse") to its Executor.
type Resolver interface {
	Resolve(name string) (Executor, error)
}

// StaticResolver is a fixed name -> Executor mapping.
type StaticResolver map[string]Executor

func (r StaticResolver) Resolve(name string) (Executor, error) {
	exec, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unsupported engine: %s", name)
	}
	return exec, nil
}
