package api

// ReportSummary is the list-view representation of a report.
type ReportSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ClientID string `json:"clientId"`
	Sections int    `json:"sections"`
}

// Report is the full report representation returned by the API.
type Report struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ClientID      string    `json:"clientId"`
	DefaultEngine string    `json:"defaultEngine"`
	Sections      []Section `json:"sections"`
}

// Section mirrors a report section; content is passed through opaque.
type Section struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Content map[string]any `json:"content"`
}

// RunResponse reports the outcome of a processing run.
type RunResponse struct {
	Success   bool   `json:"success"`
	Processed int    `json:"processed"`
	Total     int    `json:"total"`
	Error     string `json:"error,omitempty"`
}
