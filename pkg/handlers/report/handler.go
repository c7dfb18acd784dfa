package report

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/commerce-tools/marketlens/pkg/adapters"
	"github.com/commerce-tools/marketlens/pkg/models/api"
	"github.com/commerce-tools/marketlens/pkg/models/domain"
	reportsvc "github.com/commerce-tools/marketlens/pkg/services/report"
)

// Processor triggers a report processing run.
type Processor interface {
	ProcessReport(ctx context.Context, reportID string) (domain.RunResult, error)
}

type Handler struct {
	store     reportsvc.Store
	processor Processor
}

func NewHandler(store reportsvc.Store, processor Processor) *Handler {
	return &Handler{
		store:     store,
		processor: processor,
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	reports, err := h.store.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	response := make([]api.ReportSummary, 0, len(reports))
	for _, report := range reports {
		response = append(response, adapters.MapDomainReportToSummary(report))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode reports")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "report")

	report, err := h.store.Get(ctx, id)
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to load report")
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapDomainReportToAPI(report)); err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to encode report")
	}
}

func (h *Handler) ProcessReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "report")

	result, err := h.processor.ProcessReport(ctx, id)
	if err != nil {
		logger.Error().Err(err).Str("report", id).Msg("report run failed")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.RunResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	response := api.RunResponse{
		Success:   result.Success,
		Processed: result.Processed,
		Total:     result.Total,
		Error:     result.Error,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Str("report", id).Msg("failed to encode run result")
	}
}
