package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pct(v float64) *float64 { return &v }

func TestClassify_DecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		brand    *float64
		market   *float64
		expected string
	}{
		{"brand grows in declining market", pct(10), pct(-20), "Resilient Performer"},
		{"brand declines less than market", pct(-5), pct(-20), "Lagging"},
		{"brand declines same as market", pct(-20), pct(-20), "Lagging"},
		{"brand falls faster than market", pct(-30), pct(-20), "Losing Ground"},
		{"brand outgrows growing market", pct(25), pct(10), "Winning"},
		{"brand matches growing market", pct(10), pct(10), "Winning"},
		{"brand grows behind market", pct(5), pct(10), "Lagging"},
		{"brand flat in growing market", pct(0), pct(10), "Missing Out"},
		{"brand declines in growing market", pct(-5), pct(10), "Missing Out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.brand, tt.market, PlatformLabels))
		})
	}
}

func TestClassify_SubCategoryLabels(t *testing.T) {
	assert.Equal(t, "Resilient in Soft Market", Classify(pct(10), pct(-20), SubCategoryLabels))
	assert.Equal(t, "Aligned Growth", Classify(pct(25), pct(10), SubCategoryLabels))
	assert.Equal(t, "Suboptimal Growth", Classify(pct(5), pct(10), SubCategoryLabels))
	assert.Equal(t, "Underperforming", Classify(pct(-5), pct(10), SubCategoryLabels))
	assert.Equal(t, "Losing Ground", Classify(pct(-30), pct(-20), SubCategoryLabels))
}

func TestClassify_Total(t *testing.T) {
	inputs := []*float64{pct(10), pct(-10), pct(0), nil}

	for _, brand := range inputs {
		for _, market := range inputs {
			for _, labels := range []LabelSet{PlatformLabels, SubCategoryLabels} {
				got := Classify(brand, market, labels)
				assert.NotEmpty(t, got, "brand=%v market=%v", brand, market)
			}
		}
	}
}

func TestClassify_NilTreatedAsZero(t *testing.T) {
	// no prior period on either side: flat market, flat brand
	assert.Equal(t, PlatformLabels.MissingOut, Classify(nil, nil, PlatformLabels))
	// market unknown counts as non-negative
	assert.Equal(t, PlatformLabels.Winning, Classify(pct(10), nil, PlatformLabels))
}
