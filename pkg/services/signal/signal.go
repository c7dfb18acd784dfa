package signal

// LabelSet names the outcome of each branch of the performance decision
// table. Platform and sub-category sections use different label text over
// the same branch structure, so the labels are parameters rather than two
// copies of the branching.
type LabelSet struct {
	Resilient    string // market down, brand up
	Lagging      string // market down, brand down but no worse than market
	LosingGround string // market down, brand falling faster than market
	Winning      string // market up, brand up and at least matching market
	Suboptimal   string // market up, brand up but behind market
	MissingOut   string // market up, brand flat or down
}

// PlatformLabels is the label set used by platform-level performance tables.
var PlatformLabels = LabelSet{
	Resilient:    "Resilient Performer",
	Lagging:      "Lagging",
	LosingGround: "Losing Ground",
	Winning:      "Winning",
	Suboptimal:   "Lagging",
	MissingOut:   "Missing Out",
}

// SubCategoryLabels is the label set used by sub-category performance
// tables. The texts diverge from PlatformLabels on otherwise identical
// branches; both sets are kept as found pending product review.
var SubCategoryLabels = LabelSet{
	Resilient:    "Resilient in Soft Market",
	Lagging:      "Lagging",
	LosingGround: "Losing Ground",
	Winning:      "Aligned Growth",
	Suboptimal:   "Suboptimal Growth",
	MissingOut:   "Underperforming",
}

// Classify maps a (brand growth, market growth) pair to a performance label.
// The market condition is evaluated first, then the brand condition within
// it; the branch order is part of the contract. A nil growth (no prior
// period) counts as 0 so the function is total.
func Classify(brandGrowth, marketGrowth *float64, labels LabelSet) string {
	brand := deref(brandGrowth)
	market := deref(marketGrowth)

	if market < 0 {
		switch {
		case brand > 0:
			return labels.Resilient
		case brand >= market:
			return labels.Lagging
		default:
			return labels.LosingGround
		}
	}

	switch {
	case brand > 0 && brand >= market:
		return labels.Winning
	case brand > 0:
		return labels.Suboptimal
	default:
		return labels.MissingOut
	}
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
