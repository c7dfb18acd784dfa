package domain

import (
	"sort"
	"strings"
)

// SectionType selects which processor renders a section's chart data.
type SectionType string

const (
	SectionSalesOverview           SectionType = "sales_overview"
	SectionPlatformSalesValue      SectionType = "platform_sales_value"
	SectionCategorySalesValue      SectionType = "category_sales_value"
	SectionSubCategorySalesValue   SectionType = "sub_category_sales_value"
	SectionVolumeSalesValue        SectionType = "volume_sales_value"
	SectionBrandPerfPlatform       SectionType = "brand_performance_platform"
	SectionBrandPerfSubCategory    SectionType = "brand_performance_sub_category"
	SectionTopCategories           SectionType = "top_categories"
	SectionTopReseller             SectionType = "top_reseller"
	SectionTopListingPerformance   SectionType = "top_listing_performance"
	SectionTopBrandChannel         SectionType = "top_brand_channel"
	SectionPaymentTerms            SectionType = "payment_terms"
	SectionChannelShare            SectionType = "channel_share"
	SectionMonthlyGrowth           SectionType = "monthly_growth"
	SectionBrandShareTrend         SectionType = "brand_share_trend"
)

// KnownSectionTypes lists every section type the pipeline renders.
func KnownSectionTypes() []SectionType {
	return []SectionType{
		SectionSalesOverview,
		SectionPlatformSalesValue,
		SectionCategorySalesValue,
		SectionSubCategorySalesValue,
		SectionVolumeSalesValue,
		SectionBrandPerfPlatform,
		SectionBrandPerfSubCategory,
		SectionTopCategories,
		SectionTopReseller,
		SectionTopListingPerformance,
		SectionTopBrandChannel,
		SectionPaymentTerms,
		SectionChannelShare,
		SectionMonthlyGrowth,
		SectionBrandShareTrend,
	}
}

// Section is one unit of report content: a chart, table or text block.
type Section struct {
	ID      string         `json:"id"`
	Type    SectionType    `json:"type"`
	Title   string         `json:"title"`
	Content SectionContent `json:"content"`
}

// SectionContent is the section's persisted document. Beyond "queries" and
// "chartData" the fields are owned by other parts of the system (free text,
// insight annotations, layout hints) and must survive processing untouched.
type SectionContent map[string]any

// Query declares one SQL query a section runs. Database selects the engine,
// falling back to the report default when empty.
type Query struct {
	ID       string `json:"id"`
	SQL      string `json:"query"`
	Database string `json:"database,omitempty"`
}

// Queries extracts the section's declared queries. Malformed or absent
// declarations yield nil rather than an error.
func (c SectionContent) Queries() []Query {
	raw, ok := c["queries"].([]any)
	if !ok {
		return nil
	}
	queries := make([]Query, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		q := Query{}
		if v, ok := m["id"].(string); ok {
			q.ID = v
		}
		if v, ok := m["query"].(string); ok {
			q.SQL = v
		}
		if v, ok := m["database"].(string); ok {
			q.Database = v
		}
		queries = append(queries, q)
	}
	return queries
}

// WithChartData returns a copy of the content with only the chartData field
// replaced. Every other field passes through; re-running the pipeline must
// never discard user-authored content.
func (c SectionContent) WithChartData(chartData any) SectionContent {
	merged := make(SectionContent, len(c)+1)
	for k, v := range c {
		merged[k] = v
	}
	merged["chartData"] = chartData
	return merged
}

// SectionMeta is the report-level metadata processors may consult.
type SectionMeta struct {
	BrandFilter string
	Period      string
	ClientID    string
}

// Brands parses the comma-separated brand allow-list. Matching is
// case-insensitive; entries are trimmed.
func (m SectionMeta) Brands() map[string]struct{} {
	if strings.TrimSpace(m.BrandFilter) == "" {
		return nil
	}
	set := make(map[string]struct{})
	for _, b := range strings.Split(m.BrandFilter, ",") {
		b = strings.ToLower(strings.TrimSpace(b))
		if b != "" {
			set[b] = struct{}{}
		}
	}
	return set
}

// BrandList returns the allow-list in stable order, for display.
func (m SectionMeta) BrandList() []string {
	set := m.Brands()
	brands := make([]string, 0, len(set))
	for b := range set {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}
