package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/commerce-tools/marketlens/pkg/adapters"
	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/models/store"
	reportsvc "github.com/commerce-tools/marketlens/pkg/services/report"
)

// Store persists reports in an embedded DuckDB database, for CLI and
// offline runs where no hosted Postgres is configured.
type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (reportsvc.Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
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
		row, err := scanReport(rows.Scan)
		if err != nil {
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
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, client_id, default_engine, brand_filter, period, sections, created_at, updated_at
		FROM reports
		WHERE id = ?
	`, id)

	stored, err := scanReport(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Report{}, fmt.Errorf("report %s not found", id)
	}
	if err != nil {
		return domain.Report{}, err
	}
	return adapters.MapStoreReportToDomain(stored)
}

func (s *reportStore) Save(ctx context.Context, report domain.Report) error {
	row, err := adapters.MapDomainReportToStore(report)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE reports
		SET title = ?, client_id = ?, default_engine = ?, brand_filter = ?, period = ?, sections = ?, updated_at = ?
		WHERE id = ?
	`, row.Title, row.ClientID, row.DefaultEngine, row.BrandFilter, row.Period, string(row.Sections), time.Now().UTC(), row.ID)
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, row.ID, row.Title, row.ClientID, row.DefaultEngine, row.BrandFilter, row.Period, string(row.Sections), row.CreatedAt, row.UpdatedAt)
	if err != nil {
		return domain.Report{}, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

func scanReport(scan func(dest ...any) error) (store.ReportRow, error) {
	var (
		row      store.ReportRow
		sections string
	)
	err := scan(&row.ID, &row.Title, &row.ClientID, &row.DefaultEngine, &row.BrandFilter, &row.Period, &sections, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return store.ReportRow{}, err
	}
	row.Sections = []byte(sections)
	return row, nil
}
