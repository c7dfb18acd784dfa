package report

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/services/sections"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// Store is the persistence surface the runner needs. Implementations treat
// section content as opaque JSON.
type Store interface {
	List(ctx context.Context) ([]domain.Report, error)
	Get(ctx context.Context, id string) (domain.Report, error)
	Save(ctx context.Context, report domain.Report) error
	Create(ctx context.Context, report domain.Report) (domain.Report, error)
}

// Progress reports how far a run has advanced, after each section.
type Progress struct {
	Current   int
	Total     int
	SectionID string
}

// ProgressFunc receives progress callbacks during a run. May be nil.
type ProgressFunc func(Progress)

const defaultEngine = "bigquery"

// Runner executes a report's sections sequentially: run each section's
// queries, process, merge, then advance. Section counts are small and
// per-query network latency dominates, so there is no fan-out; a section's
// queries finish before the next section starts.
type Runner struct {
	store      Store
	engines    engine.Resolver
	registry   *sections.Registry
	OnProgress ProgressFunc
}

func NewRunner(store Store, engines engine.Resolver, registry *sections.Registry) *Runner {
	return &Runner{
		store:    store,
		engines:  engines,
		registry: registry,
	}
}

// ProcessReport refreshes every section of a report. A query failure aborts
// the remaining sections but keeps the content already refreshed; the
// report is saved once at the end of the run either way, so partial success
// is durable. The returned RunResult carries the failure message when the
// run did not complete.
func (r *Runner) ProcessReport(ctx context.Context, reportID string) (domain.RunResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("report", reportID).Logger()

	rep, err := r.store.Get(ctx, reportID)
	if err != nil {
		return domain.RunResult{ReportID: reportID}, fmt.Errorf("load report %s: %w", reportID, err)
	}

	meta := rep.Meta()
	total := len(rep.Sections)
	result := domain.RunResult{ReportID: reportID, Total: total}

	for i, section := range rep.Sections {
		results, err := r.runQueries(ctx, rep, section)
		if err != nil {
			logger.Error().Err(err).
				Str("section", section.ID).
				Msg("section query failed, aborting run")
			result.Error = err.Error()
			break
		}

		rep.Sections[i] = r.registry.Dispatch(ctx, section, results, meta)
		result.Processed = i + 1

		logger.Info().
			Int("current", result.Processed).
			Int("total", total).
			Str("section", section.ID).
			Msg("section processed")
		if r.OnProgress != nil {
			r.OnProgress(Progress{Current: result.Processed, Total: total, SectionID: section.ID})
		}
	}

	if err := r.store.Save(ctx, rep); err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("save report %s: %w", reportID, err)
	}

	result.Success = result.Error == ""
	return result, nil
}

// runQueries executes all of a section's declared queries against their
// engines and keys the rows by query id. The engine comes from the query
// declaration, falling back to the report default.
func (r *Runner) runQueries(
	ctx context.Context,
	rep domain.Report,
	section domain.Section,
) (map[string][]engine.Row, error) {
	results := make(map[string][]engine.Row)

	for _, q := range section.Content.Queries() {
		name := q.Database
		if name == "" {
			name = rep.DefaultEngine
		}
		if name == "" {
			name = defaultEngine
		}

		exec, err := r.engines.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", q.ID, err)
		}

		rows, err := exec.Run(ctx, q.SQL, map[string]any{
			"client_id": rep.ClientID,
			"period":    rep.Period,
		})
		if err != nil {
			return nil, fmt.Errorf("query %s on %s: %w", q.ID, name, err)
		}
		results[q.ID] = rows
	}

	return results, nil
}
