package domain

import (
	"encoding/json"
	"strconv"
)

// Field names on the chart row types below are consumed verbatim by the
// presentation layer; renaming a JSON tag is a breaking change.

// TimeSeriesRow is one point of a monthly sales series.
type TimeSeriesRow struct {
	Month    string `json:"Month"`
	SumOfGMV string `json:"SUM of GMV"`
}

// PivotRow is one month of a pivot-by-dimension table: a "Month" column
// plus one formatted column per dimension. Absent cells carry the "-"
// sentinel, signalling "no activity" as opposed to "zero activity".
type PivotRow map[string]string

// PlatformPerformanceRow compares a brand against the whole market on one
// platform.
type PlatformPerformanceRow struct {
	Platform     string `json:"Platform"`
	BrandGMV     string `json:"Brand GMV (Latest Month)"`
	BrandShare   string `json:"Brand Share (%)"`
	BrandGrowth  string `json:"Brand Growth (MoM)"`
	MarketGrowth string `json:"Market Growth (MoM)"`
	Signal       string `json:"Performance Signal"`
}

// SubCategoryPerformanceRow is the sub-category variant of the performance
// table.
type SubCategoryPerformanceRow struct {
	SubCategory  string `json:"Subcategory"`
	BrandGMV     string `json:"Brand GMV (Latest Month)"`
	BrandShare   string `json:"Brand Share (%)"`
	BrandGrowth  string `json:"Brand Growth (MoM)"`
	MarketGrowth string `json:"Market Growth (MoM)"`
	Signal       string `json:"Performance Signal"`
}

// RankChange is a signed rank delta (previous rank minus latest rank;
// positive means the entry moved up) that renders as the literal string
// "unchanged" when the ranks are equal.
type RankChange struct {
	Delta     int
	Unchanged bool
}

func (r RankChange) MarshalJSON() ([]byte, error) {
	if r.Unchanged {
		return json.Marshal("unchanged")
	}
	return []byte(strconv.Itoa(r.Delta)), nil
}

func (r *RankChange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Unchanged = s == "unchanged"
		r.Delta = 0
		return nil
	}
	r.Unchanged = false
	return json.Unmarshal(data, &r.Delta)
}

// CategoryEntry is one ranked sub-category within a channel.
type CategoryEntry struct {
	Category   string     `json:"category"`
	GMV        float64    `json:"gmv"`
	RankChange RankChange `json:"rankChange"`
	Growth     float64    `json:"growth"`
	Analysis   string     `json:"analysis"`
}

// ChannelCategories holds one channel's ranked categories.
type ChannelCategories struct {
	Insights   []string        `json:"insights"`
	Categories []CategoryEntry `json:"categories"`
}

// TopResellerRow is a display-formatted reseller leaderboard entry.
type TopResellerRow struct {
	Reseller      string `json:"Reseller"`
	GMV           string `json:"GMV"`
	Orders        string `json:"Orders"`
	AvgOrderValue string `json:"Avg Order Value"`
}

// TopListingRow is a display-formatted product listing entry.
type TopListingRow struct {
	Listing   string `json:"Listing"`
	Channel   string `json:"Channel"`
	GMV       string `json:"GMV"`
	UnitsSold string `json:"Units Sold"`
}

// TopBrandChannelRow is a display-formatted brand-by-channel entry.
type TopBrandChannelRow struct {
	Brand   string `json:"Brand"`
	Channel string `json:"Channel"`
	GMV     string `json:"GMV"`
}

// ChannelShareRow is one channel's share of latest-month sales.
type ChannelShareRow struct {
	Channel string `json:"Channel"`
	GMV     string `json:"GMV"`
	Share   string `json:"Share"`
}

// MonthlyGrowthRow is a monthly total with its month-over-month growth.
// The Month label here is space-separated ("Jan 2024"); the consuming chart
// depends on that separator.
type MonthlyGrowthRow struct {
	Month     string `json:"Month"`
	GMV       string `json:"GMV"`
	MoMGrowth string `json:"MoM Growth"`
}

// BrandShareTrendRow tracks brand share of market per month.
type BrandShareTrendRow struct {
	Month      string `json:"Month"`
	BrandGMV   string `json:"Brand GMV"`
	MarketGMV  string `json:"Market GMV"`
	BrandShare string `json:"Brand Share (%)"`
}

// PaymentTermSummary aggregates one payment term across the report period.
type PaymentTermSummary struct {
	Term       string `json:"Term"`
	Sales      string `json:"Sales"`
	SalesShare string `json:"Sales Share"`
	Orders     int    `json:"Orders"`
	OrderShare string `json:"Order Share"`
	Risk       string `json:"Risk"`
}

// TermPreference ranks one payment term within a customer category.
type TermPreference struct {
	Term  string `json:"term"`
	Share string `json:"share"`
	Rank  int    `json:"rank"`
}

// TermTrendPoint is one month of a payment term's sales trend.
type TermTrendPoint struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
	Label string  `json:"label"`
}

// PaymentTermsChart is the payment_terms section output: aggregate rows,
// a per-customer-category preference matrix and a monthly trend per term.
type PaymentTermsChart struct {
	Terms       []PaymentTermSummary        `json:"terms"`
	Preferences map[string][]TermPreference `json:"preferences"`
	Trends      map[string][]TermTrendPoint `json:"trends"`
}
