package format

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ParseNumber coerces a raw SQL cell into a float64. Numeric measures arrive
// as strings from some engines; anything that cannot be parsed counts as 0.
func ParseNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return guard(n)
	case float32:
		return guard(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return guard(f)
	case fmt.Stringer:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.String()), 64)
		if err != nil {
			return 0
		}
		return guard(f)
	default:
		return 0
	}
}

func guard(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Magnitude renders a sales value with the locale unit suffix:
// billions as "Bio", millions as "Mio", thousands as "K". Values below a
// thousand render as a plain number.
func Magnitude(v float64) string {
	return scaled(v, "Mio")
}

// MagnitudeShort is Magnitude with the short "M" million suffix. Some chart
// components expect "M" rather than "Mio"; both conventions stay as-is.
func MagnitudeShort(v float64) string {
	return scaled(v, "M")
}

func scaled(v float64, millionSuffix string) string {
	v = guard(v)
	av := math.Abs(v)
	switch {
	case av >= 1e9:
		return fmt.Sprintf("%.1f Bio", v/1e9)
	case av >= 1e6:
		return fmt.Sprintf("%.1f %s", v/1e6, millionSuffix)
	case av >= 1e3:
		return fmt.Sprintf("%.1f K", v/1e3)
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
}

// Currency renders an IDR amount with a thousands suffix ("IDR 12K").
func Currency(v float64) string {
	v = guard(v)
	av := math.Abs(v)
	switch {
	case av >= 1e9:
		return fmt.Sprintf("IDR %.1f Bio", v/1e9)
	case av >= 1e6:
		return fmt.Sprintf("IDR %.1f Mio", v/1e6)
	case av >= 1e3:
		return fmt.Sprintf("IDR %.0fK", v/1e3)
	default:
		return fmt.Sprintf("IDR %.0f", v)
	}
}

// Percent renders a growth percentage with two decimals. A nil value means
// no comparison was possible and renders as "-", which is distinct from
// "0.00%" (zero growth against a real prior period).
func Percent(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", guard(*p))
}

// SignedPercent is Percent with an explicit "+" on positive values.
func SignedPercent(p *float64) string {
	if p == nil {
		return "-"
	}
	v := guard(*p)
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

var monthIndex = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// MonthLabel maps a "YYYY-MM" key to the dash-separated display label
// ("Jan-2024"). Inputs already in label form, or unparseable, pass through.
func MonthLabel(ym string) string {
	return monthLabel(ym, "-")
}

// MonthLabelSpace maps a "YYYY-MM" key to the space-separated label
// ("Jan 2024"). The separator is part of the downstream chart contract, so
// the two variants are not unified.
func MonthLabelSpace(ym string) string {
	return monthLabel(ym, " ")
}

func monthLabel(ym, sep string) string {
	t, err := time.Parse("2006-01", strings.TrimSpace(ym))
	if err != nil {
		return strings.TrimSpace(ym)
	}
	return t.Format("Jan") + sep + t.Format("2006")
}

// monthLabelOrder decomposes a display label ("Jan-2024" or "Jan 2024") into
// a sortable (year, month) pair. Unrecognized labels sort last, among
// themselves alphabetically.
func monthLabelOrder(label string) (int, int, bool) {
	sep := "-"
	if !strings.Contains(label, "-") {
		sep = " "
	}
	parts := strings.SplitN(label, sep, 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	m, ok := monthIndex[parts[0]]
	if !ok {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return y, m, true
}

// SortMonthLabels orders display labels chronologically using the month-name
// table, so "Dec-2024" sorts before "Jan-2025". Lexical sorting of labels
// would not survive a year rollover.
func SortMonthLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		yi, mi, oki := monthLabelOrder(labels[i])
		yj, mj, okj := monthLabelOrder(labels[j])
		if oki != okj {
			return oki
		}
		if !oki {
			return labels[i] < labels[j]
		}
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})
}
