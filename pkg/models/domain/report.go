package domain

import "time"

// Report is a multi-section marketing report. Sections carry their own
// query definitions and rendered chart data inside an opaque content
// document.
type Report struct {
	ID            string
	Title         string
	ClientID      string
	DefaultEngine string
	BrandFilter   string
	Period        string
	Sections      []Section
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Meta assembles the per-run metadata handed to section processors.
func (r Report) Meta() SectionMeta {
	return SectionMeta{
		BrandFilter: r.BrandFilter,
		Period:      r.Period,
		ClientID:    r.ClientID,
	}
}

// RunResult summarizes one processing run over a report. Processed counts
// sections whose content was refreshed before the run ended; on failure the
// already-processed sections keep their new content.
type RunResult struct {
	ReportID  string
	Success   bool
	Processed int
	Total     int
	Error     string
}
