package clickhouse

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// Config holds the connection settings for one ClickHouse instance.
type Config struct {
	Addr     string
	Database string
	Username string
	Password string
}

// Executor runs SQL against ClickHouse. Parameters bind as named
// parameters through the driver, never by substitution into the SQL text.
type Executor struct {
	conn driver.Conn
}

func NewExecutor(cfg Config) (*Executor, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: strings.Split(cfg.Addr, ","),
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}
	return &Executor{conn: conn}, nil
}

func (e *Executor) Run(ctx context.Context, query string, params map[string]any) ([]engine.Row, error) {
	args := make([]any, 0, len(params))
	for name, value := range params {
		args = append(args, clickhouse.Named(name, value))
	}

	rows, err := e.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("clickhouse query failed: %w", err)
	}
	defer rows.Close()

	columns := rows.Columns()
	types := rows.ColumnTypes()

	var out []engine.Row
	for rows.Next() {
		values := make([]any, len(columns))
		for i, ct := range types {
			values[i] = reflect.New(ct.ScanType()).Interface()
		}
		if err := rows.Scan(values...); err != nil {
			return nil, fmt.Errorf("clickhouse row scan failed: %w", err)
		}

		row := make(engine.Row, len(columns))
		for i, col := range columns {
			row[col] = reflect.ValueOf(values[i]).Elem().Interface()
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (e *Executor) Close() error {
	return e.conn.Close()
}
