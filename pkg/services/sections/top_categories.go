package sections

import (
	"fmt"
	"sort"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/services/aggregate"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// topCategories ranks sub-categories per channel for the latest and
// previous period and reports how each moved. Rankings are recomputed from
// the raw rows on every run; nothing is persisted between runs.
type topCategories struct{}

func (topCategories) SectionType() domain.SectionType { return domain.SectionTopCategories }

func (topCategories) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "sales", "top_categories")
	chart := map[string]domain.ChannelCategories{}
	if len(rows) == 0 {
		return chart
	}

	byChannel := make(map[string][]engine.Row)
	for _, r := range rows {
		ch := channelOf(r)
		byChannel[ch] = append(byChannel[ch], r)
	}

	// The month pair is chosen from all rows so every channel compares the
	// same two periods, even when a channel has no latest-month rows.
	all := aggregate.Accumulate(rows, monthOf, subCategoryOf, salesOf)
	latest, previous := aggregate.LatestKeys(all)
	if latest == "" {
		return chart
	}

	for ch, channelRows := range byChannel {
		series := aggregate.Accumulate(channelRows, monthOf, subCategoryOf, salesOf)

		latestRank := rankByValue(series, latest)
		prevRank := rankByValue(series, previous)

		categories := make([]domain.CategoryEntry, 0, len(latestRank))
		for _, ranked := range latestRank {
			entry := domain.CategoryEntry{
				Category: ranked.name,
				GMV:      ranked.value,
			}

			prevValue := series.At(previous, ranked.name)
			if g := aggregate.GrowthPct(ranked.value, prevValue); g != nil {
				entry.Growth = *g
			}

			if pr, ok := prevRank.position(ranked.name); ok && previous != "" {
				delta := pr - ranked.rank
				entry.RankChange = domain.RankChange{Delta: delta, Unchanged: delta == 0}
				entry.Analysis = rankAnalysis(ranked.name, delta, entry.Growth)
			} else {
				entry.RankChange = domain.RankChange{Unchanged: true}
				entry.Analysis = fmt.Sprintf("%s has no prior-period baseline", ranked.name)
			}

			categories = append(categories, entry)
		}

		chart[ch] = domain.ChannelCategories{
			Insights:   []string{},
			Categories: categories,
		}
	}
	return chart
}

type rankedEntry struct {
	name  string
	value float64
	rank  int
}

type ranking []rankedEntry

func (r ranking) position(name string) (int, bool) {
	for _, e := range r {
		if e.name == name {
			return e.rank, true
		}
	}
	return 0, false
}

// rankByValue ranks every dimension in the series by its value at one key,
// descending, ties broken by name for a stable order. An empty key yields
// an empty ranking.
func rankByValue(s aggregate.Series, key string) ranking {
	if key == "" {
		return nil
	}
	entries := make(ranking, 0, len(s.Dimensions()))
	for _, dim := range s.Dimensions() {
		entries = append(entries, rankedEntry{name: dim, value: s.At(key, dim)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].name < entries[j].name
	})
	for i := range entries {
		entries[i].rank = i + 1
	}
	return entries
}

func rankAnalysis(name string, delta int, growth float64) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("%s moved up %d position(s), GMV growth %.2f%%", name, delta, growth)
	case delta < 0:
		return fmt.Sprintf("%s dropped %d position(s), GMV growth %.2f%%", name, -delta, growth)
	default:
		return fmt.Sprintf("%s held its rank, GMV growth %.2f%%", name, growth)
	}
}
