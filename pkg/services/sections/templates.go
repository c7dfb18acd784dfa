package sections

import "github.com/commerce-tools/marketlens/pkg/models/domain"

// defaultTemplates is the catalog of default queries per section type.
// Parameters use named bindings (@client_id, @period) resolved by the
// engine executors; values are never spliced into the SQL text.
var defaultTemplates = map[domain.SectionType][]domain.Query{
	domain.SectionSalesOverview: {{
		ID:  "sales",
		SQL: "SELECT Month, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id AND period = @period GROUP BY Month",
	}},
	domain.SectionPlatformSalesValue: {{
		ID:  "sales",
		SQL: "SELECT Month, Channel, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, Channel",
	}},
	domain.SectionCategorySalesValue: {{
		ID:  "sales",
		SQL: "SELECT Month, Category, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, Category",
	}},
	domain.SectionSubCategorySalesValue: {{
		ID:  "sales",
		SQL: "SELECT Month, SubCategory, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, SubCategory",
	}},
	domain.SectionVolumeSalesValue: {{
		ID:  "sales",
		SQL: "SELECT Month, Volume, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, Volume",
	}},
	domain.SectionBrandPerfPlatform: {{
		ID:  "sales",
		SQL: "SELECT Month, Channel, Brand, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, Channel, Brand",
	}},
	domain.SectionBrandPerfSubCategory: {{
		ID:  "sales",
		SQL: "SELECT Month, SubCategory, Brand, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, SubCategory, Brand",
	}},
	domain.SectionTopCategories: {{
		ID:  "sales",
		SQL: "SELECT Month, Channel, SubCategory, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, Channel, SubCategory",
	}},
	domain.SectionTopReseller: {{
		ID:  "resellers",
		SQL: "SELECT Reseller, SUM(DailySalesValue) AS GMV, SUM(Orders) AS totalorders, SUM(DailySalesValue)/SUM(Orders) AS AvgOrderValue FROM reseller_sales WHERE client_id = @client_id GROUP BY Reseller ORDER BY GMV DESC LIMIT 20",
	}},
	domain.SectionTopListingPerformance: {{
		ID:  "listings",
		SQL: "SELECT ProductName AS Listing, Channel, SUM(DailySalesValue) AS GMV, SUM(Units) AS Units FROM listing_sales WHERE client_id = @client_id GROUP BY Listing, Channel ORDER BY GMV DESC LIMIT 20",
	}},
	domain.SectionTopBrandChannel: {{
		ID:  "brands",
		SQL: "SELECT Brand, Channel, SUM(DailySalesValue) AS GMV FROM sales_daily WHERE client_id = @client_id GROUP BY Brand, Channel ORDER BY GMV DESC LIMIT 20",
	}},
	domain.SectionPaymentTerms: {{
		ID:  "payments",
		SQL: "SELECT Month, PaymentTerm, CustomerCategory, SUM(SalesValue) AS totalsales, SUM(Orders) AS totalorders FROM payment_sales WHERE client_id = @client_id GROUP BY Month, PaymentTerm, CustomerCategory",
	}},
	domain.SectionChannelShare: {{
		ID:  "sales",
		SQL: "SELECT Month, Channel, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, Channel",
	}},
	domain.SectionMonthlyGrowth: {{
		ID:  "sales",
		SQL: "SELECT Month, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month",
	}},
	domain.SectionBrandShareTrend: {{
		ID:  "sales",
		SQL: "SELECT Month, Brand, SUM(DailySalesValue) AS totalsales FROM sales_daily WHERE client_id = @client_id GROUP BY Month, Brand",
	}},
}

// Templates returns a deep copy of the default query catalog. Callers get
// their own copy to mutate; the catalog itself is immutable and injected
// where needed rather than imported as shared state.
func Templates() map[domain.SectionType][]domain.Query {
	out := make(map[domain.SectionType][]domain.Query, len(defaultTemplates))
	for t, queries := range defaultTemplates {
		copied := make([]domain.Query, len(queries))
		copy(copied, queries)
		out[t] = copied
	}
	return out
}
