package store

import "time"

// ReportRow is a report as persisted. Sections hold the JSON document
// verbatim; the store never interprets section content beyond round-tripping
// it.
type ReportRow struct {
	ID            string
	Title         string
	ClientID      string
	DefaultEngine string
	BrandFilter   string
	Period        string
	Sections      []byte
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
