package aggregate

import (
	"sort"

	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// Series buckets summed measures by (key, dimension). Keys are usually
// "YYYY-MM" month strings; dimensions are platforms, categories or brands.
// The structure is sparse: only (key, dimension) pairs that appeared in the
// input exist.
type Series map[string]map[string]float64

// Add accumulates a value into the (key, dimension) cell.
func (s Series) Add(key, dim string, v float64) {
	cell, ok := s[key]
	if !ok {
		cell = make(map[string]float64)
		s[key] = cell
	}
	cell[dim] += v
}

// At returns the summed value for (key, dimension), 0 when absent.
func (s Series) At(key, dim string) float64 {
	return s[key][dim]
}

// Dimensions returns every dimension observed anywhere in the series,
// sorted for deterministic iteration.
func (s Series) Dimensions() []string {
	seen := make(map[string]struct{})
	for _, cell := range s {
		for dim := range cell {
			seen[dim] = struct{}{}
		}
	}
	dims := make([]string, 0, len(seen))
	for dim := range seen {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}

// Accumulate folds rows into a Series in one pass. Accumulation is additive,
// so row order never affects the result.
func Accumulate(
	rows []engine.Row,
	keyFn func(engine.Row) string,
	dimFn func(engine.Row) string,
	measureFn func(engine.Row) float64,
) Series {
	s := make(Series)
	for _, row := range rows {
		s.Add(keyFn(row), dimFn(row), measureFn(row))
	}
	return s
}

// SortedKeys returns all bucket keys in chronological order. Lexical order
// is chronological for canonical "YYYY-MM" keys, which is intentional.
func SortedKeys(s Series) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Comparison holds the latest and previous period values for one dimension.
// Growth is nil when the previous value is zero or absent: no comparison is
// possible, which is not the same as 0% growth.
type Comparison struct {
	Current  float64
	Previous float64
	Growth   *float64
}

// GrowthPct derives a growth percentage, or nil when previous is not a
// strictly positive base. Never divides by zero.
func GrowthPct(current, previous float64) *float64 {
	if previous <= 0 {
		return nil
	}
	g := (current - previous) / previous * 100
	return &g
}

// Compare reads the (latest, previous) values for one dimension against an
// explicit key pair. An empty previous key means a single-period dataset.
func Compare(s Series, latestKey, prevKey, dim string) Comparison {
	c := Comparison{Current: s.At(latestKey, dim)}
	if prevKey != "" {
		c.Previous = s.At(prevKey, dim)
	}
	c.Growth = GrowthPct(c.Current, c.Previous)
	return c
}

// LatestKeys picks the two most recent keys observed anywhere in the series.
// With fewer than two keys the previous key is empty.
func LatestKeys(s Series) (latest, previous string) {
	keys := SortedKeys(s)
	switch len(keys) {
	case 0:
		return "", ""
	case 1:
		return keys[0], ""
	default:
		return keys[len(keys)-1], keys[len(keys)-2]
	}
}

// LatestVsPrevious compares the two most recent periods for one dimension.
// The period pair comes from the whole series, not just this dimension, so
// every dimension in a section is compared over the same two months.
func LatestVsPrevious(s Series, dim string) Comparison {
	latest, previous := LatestKeys(s)
	if latest == "" {
		return Comparison{}
	}
	return Compare(s, latest, previous, dim)
}
