package report

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
)

var reportColumns = []string{
	"id", "title", "client_id", "default_engine", "brand_filter", "period",
	"sections", "created_at", "updated_at",
}

func TestStore_Get(t *testing.T) {
	// Given: a sqlmock DB with one stored report
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	sections := `[{"id":"s1","type":"sales_overview","content":{"text":"note"}}]`
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(reportColumns).
			AddRow("r1", "Monthly Sales", "client-1", "bigquery", "wardah", "2024-06",
				[]byte(sections), created, created))

	store, err := NewStore(db)
	require.NoError(t, err)

	// When
	report, err := store.Get(context.Background(), "r1")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Monthly Sales", report.Title)
	assert.Equal(t, "wardah", report.BrandFilter)
	require.Len(t, report.Sections, 1)
	assert.Equal(t, domain.SectionSalesOverview, report.Sections[0].Type)
	assert.Equal(t, "note", report.Sections[0].Content["text"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(reportColumns))

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestStore_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM reports")).
		WillReturnRows(sqlmock.NewRows(reportColumns).
			AddRow("r1", "First", "c1", "bigquery", "", "2024-05", []byte(`[]`), now, now).
			AddRow("r2", "Second", "c2", "clickhouse", "azarine", "2024-06", []byte(`[]`), now, now))

	store, err := NewStore(db)
	require.NoError(t, err)

	reports, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "First", reports[0].Title)
	assert.Equal(t, "azarine", reports[1].BrandFilter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reports")).
		WithArgs("Updated", "client-1", "bigquery", "wardah", "2024-06",
			sqlmock.AnyArg(), sqlmock.AnyArg(), "r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store, err := NewStore(db)
	require.NoError(t, err)

	err = store.Save(context.Background(), domain.Report{
		ID:            "r1",
		Title:         "Updated",
		ClientID:      "client-1",
		DefaultEngine: "bigquery",
		BrandFilter:   "wardah",
		Period:        "2024-06",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Save_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reports")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := NewStore(db)
	require.NoError(t, err)

	err = store.Save(context.Background(), domain.Report{ID: "ghost"})
	assert.ErrorContains(t, err, "not found")
}

func TestStore_Create_AssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reports")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store, err := NewStore(db)
	require.NoError(t, err)

	created, err := store.Create(context.Background(), domain.Report{Title: "Fresh"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
