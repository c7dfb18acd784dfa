package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/commerce-tools/marketlens/pkg/adapters"
	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/models/store"
	reportsvc "github.com/commerce-tools/marketlens/pkg/services/report"
)

// Store persists reports in the Supabase-hosted Postgres database. Section
// content lives in a jsonb column and round-trips verbatim; the store makes
// no assumptions about fields inside it.
type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (reportsvc.Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

// Open connects to Postgres with the given DSN and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (s *reportStore) List(ctx context.Context) ([]domain.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, client_id, default_engine, brand_filter, period, sections, created_at, updated_at
		FROM reports
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var row store.ReportRow
		if err := rows.Scan(&row.ID, &row.Title, &row.ClientID, &row.DefaultEngine,
			&row.BrandFilter, &row.Period, &row.Sections, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		report, err := adapters.MapStoreReportToDomain(row)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (s *reportStore) Get(ctx context.Context, id string) (domain.Report, error) {
	var row store.ReportRow
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, client_id, default_engine, brand_filter, period, sections, created_at, updated_at
		FROM reports
		WHERE id = $1
	`, id).Scan(&row.ID, &row.Title, &row.ClientID, &row.DefaultEngine,
		&row.BrandFilter, &row.Period, &row.Sections, &row.CreatedAt, &row.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Report{}, fmt.Errorf("report %s not found", id)
	}
	if err != nil {
		return domain.Report{}, fmt.Errorf("get report %s: %w", id, err)
	}
	return adapters.MapStoreReportToDomain(row)
}

func (s *reportStore) Save(ctx context.Context, report domain.Report) error {
	row, err := adapters.MapDomainReportToStore(report)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE reports
		SET title = $1, client_id = $2, default_engine = $3, brand_filter = $4, period = $5, sections = $6, updated_at = $7
		WHERE id = $8
	`, row.Title, row.ClientID, row.DefaultEngine, row.BrandFilter, row.Period, row.Sections, time.Now().UTC(), row.ID)
	if err != nil {
		return fmt.Errorf("save report %s: %w", report.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("report %s not found", report.ID)
	}
	return nil
}

func (s *reportStore) Create(ctx context.Context, report domain.Report) (domain.Report, error) {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	report.CreatedAt = now
	report.UpdatedAt = now

	row, err := adapters.MapDomainReportToStore(report)
	if err != nil {
		return domain.Report{}, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, title, client_id, default_engine, brand_filter, period, sections, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, row.ID, row.Title, row.ClientID, row.DefaultEngine, row.BrandFilter, row.Period, row.Sections, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return domain.Report{}, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}
