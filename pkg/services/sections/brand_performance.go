package sections

import (
	"sort"
	"strings"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/services/aggregate"
	"github.com/commerce-tools/marketlens/pkg/services/format"
	"github.com/commerce-tools/marketlens/pkg/services/signal"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// performanceEntry is the engine-level result of comparing a brand against
// the market on one dimension, before display formatting.
type performanceEntry struct {
	dimension string
	brand     aggregate.Comparison
	market    aggregate.Comparison
	share     *float64
	signal    string
}

// comparePerformance computes brand-vs-market comparisons per dimension.
// The market series includes every brand's rows; the brand series only rows
// matching the allow-list. Both use the market's month pair so all
// dimensions compare over the same two periods.
func comparePerformance(rows []engine.Row, dimFn func(engine.Row) string, meta domain.SectionMeta, labels signal.LabelSet) []performanceEntry {
	if len(rows) == 0 {
		return nil
	}

	brands := meta.Brands()
	inFilter := func(r engine.Row) bool {
		if brands == nil {
			return false
		}
		_, ok := brands[strings.ToLower(brandOf(r))]
		return ok
	}

	market := aggregate.Accumulate(rows, monthOf, dimFn, salesOf)

	var brandRows []engine.Row
	for _, r := range rows {
		if inFilter(r) {
			brandRows = append(brandRows, r)
		}
	}
	brand := aggregate.Accumulate(brandRows, monthOf, dimFn, salesOf)

	latest, previous := aggregate.LatestKeys(market)
	if latest == "" {
		return nil
	}

	entries := make([]performanceEntry, 0, len(market.Dimensions()))
	for _, dim := range market.Dimensions() {
		marketCmp := aggregate.Compare(market, latest, previous, dim)
		brandCmp := aggregate.Compare(brand, latest, previous, dim)

		var share *float64
		if marketCmp.Current > 0 {
			pct := brandCmp.Current / marketCmp.Current * 100
			share = &pct
		}

		entries = append(entries, performanceEntry{
			dimension: dim,
			brand:     brandCmp,
			market:    marketCmp,
			share:     share,
			signal:    signal.Classify(brandCmp.Growth, marketCmp.Growth, labels),
		})
	}
	return entries
}

// brandPerformancePlatform compares the brand against the market per
// platform. Every platform appears, including ones the brand is absent
// from; rows sort by market size.
type brandPerformancePlatform struct{}

func (brandPerformancePlatform) SectionType() domain.SectionType {
	return domain.SectionBrandPerfPlatform
}

func (brandPerformancePlatform) Process(results map[string][]engine.Row, meta domain.SectionMeta) any {
	rows := rowsFor(results, "sales", "brand_performance")
	chart := []domain.PlatformPerformanceRow{}

	entries := comparePerformance(rows, channelOf, meta, signal.PlatformLabels)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].market.Current > entries[j].market.Current
	})

	for _, e := range entries {
		chart = append(chart, domain.PlatformPerformanceRow{
			Platform:     e.dimension,
			BrandGMV:     format.Magnitude(e.brand.Current),
			BrandShare:   format.Percent(e.share),
			BrandGrowth:  format.SignedPercent(e.brand.Growth),
			MarketGrowth: format.SignedPercent(e.market.Growth),
			Signal:       e.signal,
		})
	}
	return chart
}

// brandPerformanceSubCategory is the sub-category variant: only
// sub-categories where the brand sold anything in the latest period appear,
// sorted by brand GMV descending.
type brandPerformanceSubCategory struct{}

func (brandPerformanceSubCategory) SectionType() domain.SectionType {
	return domain.SectionBrandPerfSubCategory
}

func (brandPerformanceSubCategory) Process(results map[string][]engine.Row, meta domain.SectionMeta) any {
	rows := rowsFor(results, "sales", "brand_performance")
	chart := []domain.SubCategoryPerformanceRow{}

	entries := comparePerformance(rows, subCategoryOf, meta, signal.SubCategoryLabels)

	present := entries[:0]
	for _, e := range entries {
		if e.brand.Current > 0 {
			present = append(present, e)
		}
	}
	sort.SliceStable(present, func(i, j int) bool {
		return present[i].brand.Current > present[j].brand.Current
	})

	for _, e := range present {
		chart = append(chart, domain.SubCategoryPerformanceRow{
			SubCategory:  e.dimension,
			BrandGMV:     format.Magnitude(e.brand.Current),
			BrandShare:   format.Percent(e.share),
			BrandGrowth:  format.SignedPercent(e.brand.Growth),
			MarketGrowth: format.SignedPercent(e.market.Growth),
			Signal:       e.signal,
		})
	}
	return chart
}

// brandShareTrend tracks the brand's share of market month by month.
type brandShareTrend struct{}

func (brandShareTrend) SectionType() domain.SectionType { return domain.SectionBrandShareTrend }

func (brandShareTrend) Process(results map[string][]engine.Row, meta domain.SectionMeta) any {
	rows := rowsFor(results, "sales", "brand_share")
	chart := []domain.BrandShareTrendRow{}
	if len(rows) == 0 {
		return chart
	}

	brands := meta.Brands()
	market := aggregate.Accumulate(rows, monthOf, func(engine.Row) string { return "total" }, salesOf)

	var brandRows []engine.Row
	for _, r := range rows {
		if _, ok := brands[strings.ToLower(brandOf(r))]; ok {
			brandRows = append(brandRows, r)
		}
	}
	brand := aggregate.Accumulate(brandRows, monthOf, func(engine.Row) string { return "total" }, salesOf)

	for _, key := range aggregate.SortedKeys(market) {
		marketGMV := market.At(key, "total")
		brandGMV := brand.At(key, "total")
		var share *float64
		if marketGMV > 0 {
			pct := brandGMV / marketGMV * 100
			share = &pct
		}
		chart = append(chart, domain.BrandShareTrendRow{
			Month:      format.MonthLabel(key),
			BrandGMV:   format.Magnitude(brandGMV),
			MarketGMV:  format.Magnitude(marketGMV),
			BrandShare: format.Percent(share),
		})
	}
	return chart
}
