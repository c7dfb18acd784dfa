package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"billions", 1_000_000_000, "1.0 Bio"},
		{"billions fractional", 1_500_000_000, "1.5 Bio"},
		{"millions", 12_300_000, "12.3 Mio"},
		{"thousands", 45_000, "45.0 K"},
		{"below thousand integer", 999, "999"},
		{"below thousand fractional", 12.5, "12.5"},
		{"zero", 0, "0"},
		{"negative", -2_000_000_000, "-2.0 Bio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Magnitude(tt.value))
		})
	}
}

func TestMagnitude_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, "3.2 Mio", Magnitude(3_210_000))
	}
}

func TestMagnitudeShort(t *testing.T) {
	assert.Equal(t, "12.3 M", MagnitudeShort(12_300_000))
	assert.Equal(t, "1.0 Bio", MagnitudeShort(1_000_000_000))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "IDR 12K", Currency(12_000))
	assert.Equal(t, "IDR 1.5 Mio", Currency(1_500_000))
	assert.Equal(t, "IDR 500", Currency(500))
}

func TestPercent(t *testing.T) {
	t.Run("nil renders dash, not zero", func(t *testing.T) {
		assert.Equal(t, "-", Percent(nil))
		assert.Equal(t, "-", SignedPercent(nil))
	})

	t.Run("two decimal places", func(t *testing.T) {
		v := 12.3456
		assert.Equal(t, "12.35%", Percent(&v))
	})

	t.Run("zero growth is not a dash", func(t *testing.T) {
		v := 0.0
		assert.Equal(t, "0.00%", Percent(&v))
	})

	t.Run("signed variant prefixes positive", func(t *testing.T) {
		up := 10.0
		down := -20.0
		assert.Equal(t, "+10.00%", SignedPercent(&up))
		assert.Equal(t, "-20.00%", SignedPercent(&down))
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{"numeric string", "1000000000", 1_000_000_000},
		{"padded string", "  42.5 ", 42.5},
		{"malformed string", "n/a", 0},
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int64", int64(7), 7},
		{"bool is not numeric", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.value))
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan-2024", MonthLabel("2024-01"))
	assert.Equal(t, "Dec-2023", MonthLabel("2023-12"))
	assert.Equal(t, "Jan 2024", MonthLabelSpace("2024-01"))

	// unparseable inputs pass through
	assert.Equal(t, "Jan-2024", MonthLabel("Jan-2024"))
	assert.Equal(t, "garbage", MonthLabel("garbage"))
}

func TestSortMonthLabels(t *testing.T) {
	t.Run("year rollover", func(t *testing.T) {
		labels := []string{"Jan-2025", "Nov-2024", "Dec-2024", "Feb-2025"}
		SortMonthLabels(labels)
		assert.Equal(t, []string{"Nov-2024", "Dec-2024", "Jan-2025", "Feb-2025"}, labels)
	})

	t.Run("space separator convention", func(t *testing.T) {
		labels := []string{"Mar 2024", "Jan 2024", "Feb 2024"}
		SortMonthLabels(labels)
		assert.Equal(t, []string{"Jan 2024", "Feb 2024", "Mar 2024"}, labels)
	})

	t.Run("unrecognized labels sort last", func(t *testing.T) {
		labels := []string{"???", "Jan-2024"}
		SortMonthLabels(labels)
		assert.Equal(t, []string{"Jan-2024", "???"}, labels)
	})
}
