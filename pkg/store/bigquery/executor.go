package bigquery

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// Executor runs SQL against BigQuery. Parameters bind as named query
// parameters; the SQL text is passed through opaque and never rewritten.
type Executor struct {
	client *bigquery.Client
}

func NewExecutor(ctx context.Context, projectID string, opts ...option.ClientOption) (*Executor, error) {
	client, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}
	return &Executor{client: client}, nil
}

func (e *Executor) Run(ctx context.Context, query string, params map[string]any) ([]engine.Row, error) {
	q := e.client.Query(query)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		q.Parameters = append(q.Parameters, bigquery.QueryParameter{Name: name, Value: params[name]})
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("bigquery query failed: %w", err)
	}

	var rows []engine.Row
	for {
		var values map[string]bigquery.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bigquery row read failed: %w", err)
		}

		row := make(engine.Row, len(values))
		for col, v := range values {
			row[col] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (e *Executor) Close() error {
	return e.client.Close()
}
