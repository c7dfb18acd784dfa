package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/commerce-tools/marketlens/pkg/models/api"
	"github.com/commerce-tools/marketlens/pkg/models/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context) ([]domain.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Report), args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, id string) (domain.Report, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Report), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, report domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockStore) Create(ctx context.Context, report domain.Report) (domain.Report, error) {
	args := m.Called(ctx, report)
	return args.Get(0).(domain.Report), args.Error(1)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) ProcessReport(ctx context.Context, reportID string) (domain.RunResult, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(domain.RunResult), args.Error(1)
}

func requestWithReportID(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("report", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

func TestListReports(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mockStore)
		expectedStatus int
		expectedBody   []api.ReportSummary
	}{
		{
			name: "successful response",
			setupMock: func(m *mockStore) {
				m.On("List", mock.Anything).Return(
					[]domain.Report{
						{ID: "r1", Title: "June", ClientID: "c1", Sections: []domain.Section{{ID: "s1"}, {ID: "s2"}}},
						{ID: "r2", Title: "July", ClientID: "c2"},
					},
					nil,
				)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []api.ReportSummary{
				{ID: "r1", Title: "June", ClientID: "c1", Sections: 2},
				{ID: "r2", Title: "July", ClientID: "c2"},
			},
		},
		{
			name: "empty list",
			setupMock: func(m *mockStore) {
				m.On("List", mock.Anything).Return([]domain.Report{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []api.ReportSummary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			tt.setupMock(store)
			handler := NewHandler(store, new(mockProcessor))

			req := httptest.NewRequest("GET", "/api/v1/reports", nil)
			rec := httptest.NewRecorder()

			handler.ListReports(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response []api.ReportSummary
			err := json.NewDecoder(rec.Body).Decode(&response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, response)

			store.AssertExpectations(t)
		})
	}
}

func TestListReports_StoreError(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything).Return([]domain.Report{}, errors.New("db down"))
	handler := NewHandler(store, new(mockProcessor))

	rec := httptest.NewRecorder()
	handler.ListReports(rec, httptest.NewRequest("GET", "/api/v1/reports", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetReport(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, "r1").Return(domain.Report{
		ID:    "r1",
		Title: "June",
		Sections: []domain.Section{
			{ID: "s1", Type: domain.SectionSalesOverview, Content: domain.SectionContent{"text": "note"}},
		},
	}, nil)
	handler := NewHandler(store, new(mockProcessor))

	rec := httptest.NewRecorder()
	handler.GetReport(rec, requestWithReportID("GET", "/api/v1/reports/r1", "r1"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var response api.Report
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "r1", response.ID)
	assert.Len(t, response.Sections, 1)
	assert.Equal(t, "sales_overview", response.Sections[0].Type)

	store.AssertExpectations(t)
}

func TestGetReport_NotFound(t *testing.T) {
	store := new(mockStore)
	store.On("Get", mock.Anything, "missing").Return(domain.Report{}, errors.New("report missing not found"))
	handler := NewHandler(store, new(mockProcessor))

	rec := httptest.NewRecorder()
	handler.GetReport(rec, requestWithReportID("GET", "/api/v1/reports/missing", "missing"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProcessReport(t *testing.T) {
	tests := []struct {
		name           string
		result         domain.RunResult
		err            error
		expectedStatus int
		expectedBody   api.RunResponse
	}{
		{
			name:           "full run",
			result:         domain.RunResult{Success: true, Processed: 15, Total: 15},
			expectedStatus: http.StatusOK,
			expectedBody:   api.RunResponse{Success: true, Processed: 15, Total: 15},
		},
		{
			name:           "partial run",
			result:         domain.RunResult{Success: false, Processed: 3, Total: 15, Error: "query sales on bigquery: timeout"},
			expectedStatus: http.StatusOK,
			expectedBody:   api.RunResponse{Success: false, Processed: 3, Total: 15, Error: "query sales on bigquery: timeout"},
		},
		{
			name:           "run error",
			err:            errors.New("load report r1: not found"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   api.RunResponse{Success: false, Error: "load report r1: not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := new(mockProcessor)
			processor.On("ProcessReport", mock.Anything, "r1").Return(tt.result, tt.err)
			handler := NewHandler(new(mockStore), processor)

			rec := httptest.NewRecorder()
			handler.ProcessReport(rec, requestWithReportID("POST", "/api/v1/reports/r1/process", "r1"))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response api.RunResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response)

			processor.AssertExpectations(t)
		})
	}
}
