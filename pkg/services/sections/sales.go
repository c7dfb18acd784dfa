package sections

import (
	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/services/aggregate"
	"github.com/commerce-tools/marketlens/pkg/services/format"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// salesOverview renders the monthly total-sales series. Rows bucket by the
// formatted month label and sort with the month-name table, so Dec-2024
// stays ahead of Jan-2025.
type salesOverview struct{}

func (salesOverview) SectionType() domain.SectionType { return domain.SectionSalesOverview }

func (salesOverview) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "sales", "sales_overview")
	chart := []domain.TimeSeriesRow{}
	if len(rows) == 0 {
		return chart
	}

	series := aggregate.Accumulate(rows,
		func(r engine.Row) string { return format.MonthLabel(monthOf(r)) },
		func(engine.Row) string { return "total" },
		salesOf,
	)

	labels := make([]string, 0, len(series))
	for label := range series {
		labels = append(labels, label)
	}
	format.SortMonthLabels(labels)

	for _, label := range labels {
		chart = append(chart, domain.TimeSeriesRow{
			Month:    label,
			SumOfGMV: format.Magnitude(series.At(label, "total")),
		})
	}
	return chart
}

// monthlyGrowth renders the monthly series with month-over-month growth.
// The first month has no base and renders "-". This chart uses the
// space-separated month label.
type monthlyGrowth struct{}

func (monthlyGrowth) SectionType() domain.SectionType { return domain.SectionMonthlyGrowth }

func (monthlyGrowth) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "sales", "monthly_growth")
	chart := []domain.MonthlyGrowthRow{}
	if len(rows) == 0 {
		return chart
	}

	series := aggregate.Accumulate(rows,
		monthOf,
		func(engine.Row) string { return "total" },
		salesOf,
	)

	prev := 0.0
	for i, key := range aggregate.SortedKeys(series) {
		current := series.At(key, "total")
		var growth *float64
		if i > 0 {
			growth = aggregate.GrowthPct(current, prev)
		}
		chart = append(chart, domain.MonthlyGrowthRow{
			Month:     format.MonthLabelSpace(key),
			GMV:       format.Magnitude(current),
			MoMGrowth: format.SignedPercent(growth),
		})
		prev = current
	}
	return chart
}

// channelShare renders each channel's share of latest-month sales.
type channelShare struct{}

func (channelShare) SectionType() domain.SectionType { return domain.SectionChannelShare }

func (channelShare) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "sales", "channel_share")
	chart := []domain.ChannelShareRow{}
	if len(rows) == 0 {
		return chart
	}

	series := aggregate.Accumulate(rows, monthOf, channelOf, salesOf)
	latest, _ := aggregate.LatestKeys(series)
	if latest == "" {
		return chart
	}

	total := 0.0
	for _, dim := range series.Dimensions() {
		total += series.At(latest, dim)
	}

	for _, dim := range series.Dimensions() {
		value := series.At(latest, dim)
		var share *float64
		if total > 0 {
			pct := value / total * 100
			share = &pct
		}
		chart = append(chart, domain.ChannelShareRow{
			Channel: dim,
			GMV:     format.Magnitude(value),
			Share:   format.Percent(share),
		})
	}
	return chart
}
