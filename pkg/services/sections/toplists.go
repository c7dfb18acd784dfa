package sections

import (
	"strconv"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/services/format"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// The top_* sections are single-pass formatters: no period comparison, just
// magnitude/currency formatting and renaming to the display schema. Row
// order is whatever the query produced (they order by GMV server-side).

type topReseller struct{}

func (topReseller) SectionType() domain.SectionType { return domain.SectionTopReseller }

func (topReseller) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "resellers", "top_reseller")
	chart := make([]domain.TopResellerRow, 0, len(rows))
	for _, r := range rows {
		orders := ordersOf(r)
		chart = append(chart, domain.TopResellerRow{
			Reseller:      text(r, "Reseller", "reseller", "ResellerName"),
			GMV:           format.Magnitude(salesOf(r)),
			Orders:        strconv.FormatFloat(orders, 'f', 0, 64),
			AvgOrderValue: format.Currency(number(r, "AvgOrderValue", "avg_order_value", "AOV")),
		})
	}
	return chart
}

type topListingPerformance struct{}

func (topListingPerformance) SectionType() domain.SectionType {
	return domain.SectionTopListingPerformance
}

func (topListingPerformance) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "listings", "top_listing")
	chart := make([]domain.TopListingRow, 0, len(rows))
	for _, r := range rows {
		chart = append(chart, domain.TopListingRow{
			Listing:   text(r, "Listing", "listing", "ProductName", "product_name"),
			Channel:   channelOf(r),
			GMV:       format.Magnitude(salesOf(r)),
			UnitsSold: strconv.FormatFloat(number(r, "Units", "units", "UnitsSold", "qty"), 'f', 0, 64),
		})
	}
	return chart
}

type topBrandChannel struct{}

func (topBrandChannel) SectionType() domain.SectionType { return domain.SectionTopBrandChannel }

func (topBrandChannel) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "brands", "top_brand_channel")
	chart := make([]domain.TopBrandChannelRow, 0, len(rows))
	for _, r := range rows {
		chart = append(chart, domain.TopBrandChannelRow{
			Brand:   brandOf(r),
			Channel: channelOf(r),
			GMV:     format.MagnitudeShort(salesOf(r)),
		})
	}
	return chart
}
