package sections

import (
	"fmt"
	"strings"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/services/format"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// Processor turns one section's raw query results into the chart data shape
// its visualization expects. Process never fails on malformed input: bad
// numeric strings coerce to zero, missing result sets yield the processor's
// declared empty shape.
type Processor interface {
	SectionType() domain.SectionType
	Process(results map[string][]engine.Row, meta domain.SectionMeta) any
}

// rowsFor picks the result set for one of the query ids a processor expects,
// falling back to the sole result set when a section declared its query
// under an ad-hoc id.
func rowsFor(results map[string][]engine.Row, ids ...string) []engine.Row {
	for _, id := range ids {
		if rows, ok := results[id]; ok {
			return rows
		}
	}
	if len(results) == 1 {
		for _, rows := range results {
			return rows
		}
	}
	return nil
}

// text reads the first present column as a trimmed string.
func text(row engine.Row, cols ...string) string {
	for _, col := range cols {
		v, ok := row[col]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return ""
}

// number reads the first present column as a float, coercing strings and
// treating anything unparseable as 0.
func number(row engine.Row, cols ...string) float64 {
	for _, col := range cols {
		if v, ok := row[col]; ok {
			return format.ParseNumber(v)
		}
	}
	return 0
}

// Column-name candidates shared across processors. The two engines disagree
// on casing per query, so each accessor tries the known spellings in order.
var (
	monthCols       = []string{"Month", "month", "MonthKey", "month_key"}
	channelCols     = []string{"Channel", "channel", "Platform", "platform"}
	brandCols       = []string{"Brand", "brand"}
	categoryCols    = []string{"Category", "category"}
	subCategoryCols = []string{"SubCategory", "Subcategory", "sub_category", "subcategory"}
	salesCols       = []string{"totalsales", "TotalSales", "total_sales", "DailySalesValue", "SalesValue", "GMV", "gmv", "sales"}
	ordersCols      = []string{"totalorders", "TotalOrders", "total_orders", "Orders", "orders"}
)

func monthOf(row engine.Row) string       { return text(row, monthCols...) }
func channelOf(row engine.Row) string     { return text(row, channelCols...) }
func brandOf(row engine.Row) string       { return text(row, brandCols...) }
func salesOf(row engine.Row) float64      { return number(row, salesCols...) }
func ordersOf(row engine.Row) float64     { return number(row, ordersCols...) }
func categoryOf(row engine.Row) string    { return text(row, categoryCols...) }
func subCategoryOf(row engine.Row) string { return text(row, subCategoryCols...) }
