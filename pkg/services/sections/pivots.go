package sections

import (
	"regexp"
	"strings"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/services/aggregate"
	"github.com/commerce-tools/marketlens/pkg/services/format"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// pivotByDimension builds the month-by-dimension table shared by the
// *_sales_value sections: one row per month, one formatted column per
// dimension, "-" where a (month, dimension) cell never appeared in the data.
func pivotByDimension(rows []engine.Row, dimFn func(engine.Row) string) []domain.PivotRow {
	chart := []domain.PivotRow{}
	if len(rows) == 0 {
		return chart
	}

	series := aggregate.Accumulate(rows, monthOf, dimFn, salesOf)
	dims := series.Dimensions()

	for _, key := range aggregate.SortedKeys(series) {
		row := domain.PivotRow{"Month": format.MonthLabel(key)}
		for _, dim := range dims {
			if _, ok := series[key][dim]; !ok {
				row[dim] = "-"
				continue
			}
			row[dim] = format.Magnitude(series.At(key, dim))
		}
		chart = append(chart, row)
	}
	return chart
}

type platformSalesValue struct{}

func (platformSalesValue) SectionType() domain.SectionType { return domain.SectionPlatformSalesValue }

func (platformSalesValue) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	return pivotByDimension(rowsFor(results, "sales", "platform_sales"), channelOf)
}

type categorySalesValue struct{}

func (categorySalesValue) SectionType() domain.SectionType { return domain.SectionCategorySalesValue }

func (categorySalesValue) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	return pivotByDimension(rowsFor(results, "sales", "category_sales"), categoryOf)
}

type subCategorySalesValue struct{}

func (subCategorySalesValue) SectionType() domain.SectionType {
	return domain.SectionSubCategorySalesValue
}

func (subCategorySalesValue) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	return pivotByDimension(rowsFor(results, "sales", "sub_category_sales"), subCategoryOf)
}

var volumeWhitespace = regexp.MustCompile(`\s+`)

// NormalizeVolumeLabel canonicalizes a free-text volume-range label so it
// can serve as a pivot column key: whitespace stripped, lowercased
// ("100 - 200ml", "100-200 ML" and "100-200ml" all become "100-200ml").
// The function is idempotent and keeps distinct ranges distinct.
func NormalizeVolumeLabel(label string) string {
	return strings.ToLower(volumeWhitespace.ReplaceAllString(label, ""))
}

type volumeSalesValue struct{}

func (volumeSalesValue) SectionType() domain.SectionType { return domain.SectionVolumeSalesValue }

func (volumeSalesValue) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "sales", "volume_sales")
	return pivotByDimension(rows, func(r engine.Row) string {
		return NormalizeVolumeLabel(text(r, "Volume", "volume", "VolumeRange", "volume_range"))
	})
}
