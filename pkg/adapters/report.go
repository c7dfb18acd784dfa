package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/commerce-tools/marketlens/pkg/models/api"
	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/models/store"
)

// MapStoreReportToDomain decodes a persisted report row. Section content
// decodes into a generic map, so fields the pipeline does not know about
// survive a full read-process-write cycle.
func MapStoreReportToDomain(row store.ReportRow) (domain.Report, error) {
	report := domain.Report{
		ID:            row.ID,
		Title:         row.Title,
		ClientID:      row.ClientID,
		DefaultEngine: row.DefaultEngine,
		BrandFilter:   row.BrandFilter,
		Period:        row.Period,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	if len(row.Sections) > 0 {
		if err := json.Unmarshal(row.Sections, &report.Sections); err != nil {
			return domain.Report{}, fmt.Errorf("decode sections for report %s: %w", row.ID, err)
		}
	}
	return report, nil
}

// MapDomainReportToStore encodes a report for persistence.
func MapDomainReportToStore(report domain.Report) (store.ReportRow, error) {
	sections, err := json.Marshal(report.Sections)
	if err != nil {
		return store.ReportRow{}, fmt.Errorf("encode sections for report %s: %w", report.ID, err)
	}

	return store.ReportRow{
		ID:            report.ID,
		Title:         report.Title,
		ClientID:      report.ClientID,
		DefaultEngine: report.DefaultEngine,
		BrandFilter:   report.BrandFilter,
		Period:        report.Period,
		Sections:      sections,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}, nil
}

// MapDomainReportToAPI shapes a report for the HTTP API.
func MapDomainReportToAPI(report domain.Report) api.Report {
	out := api.Report{
		ID:            report.ID,
		Title:         report.Title,
		ClientID:      report.ClientID,
		DefaultEngine: report.DefaultEngine,
	}
	for _, section := range report.Sections {
		out.Sections = append(out.Sections, api.Section{
			ID:      section.ID,
			Type:    string(section.Type),
			Title:   section.Title,
			Content: section.Content,
		})
	}
	return out
}

// MapDomainReportToSummary shapes a report for list views.
func MapDomainReportToSummary(report domain.Report) api.ReportSummary {
	return api.ReportSummary{
		ID:       report.ID,
		Title:    report.Title,
		ClientID: report.ClientID,
		Sections: len(report.Sections),
	}
}
