package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

func TestTermRisk(t *testing.T) {
	assert.Equal(t, RiskHigh, TermRisk("Net 30"))
	assert.Equal(t, RiskHigh, TermRisk("net 60"))
	assert.Equal(t, RiskMedium, TermRisk("Net 15"))
	assert.Equal(t, RiskLow, TermRisk("COD"))
	assert.Equal(t, RiskLow, TermRisk("Prepaid"))

	t.Run("unrecognized terms default to low", func(t *testing.T) {
		assert.Equal(t, RiskLow, TermRisk("Installment"))
	})

	t.Run("a 30 inside an unrelated label is not high risk", func(t *testing.T) {
		// lookup by recognized label, not substring matching
		assert.Equal(t, RiskLow, TermRisk("Bundle of 30 units"))
	})
}

func TestPaymentTerms(t *testing.T) {
	p := paymentTerms{}

	results := map[string][]engine.Row{
		"payments": {
			{"Month": "2024-01", "PaymentTerm": "Net 30", "CustomerCategory": "Distributor", "totalsales": "600", "totalorders": "6"},
			{"Month": "2024-01", "PaymentTerm": "COD", "CustomerCategory": "Distributor", "totalsales": "200", "totalorders": "10"},
			{"Month": "2024-01", "PaymentTerm": "COD", "CustomerCategory": "Retail", "totalsales": "200", "totalorders": "4"},
			{"Month": "2024-02", "PaymentTerm": "Net 30", "CustomerCategory": "Distributor", "totalsales": "400", "totalorders": "4"},
		},
	}

	chart, ok := p.Process(results, domain.SectionMeta{}).(domain.PaymentTermsChart)
	require.True(t, ok)

	t.Run("terms ranked by sales with shares and risk", func(t *testing.T) {
		require.Len(t, chart.Terms, 2)

		net30 := chart.Terms[0]
		assert.Equal(t, "Net 30", net30.Term)
		assert.Equal(t, "71.43%", net30.SalesShare) // 1000 of 1400
		assert.Equal(t, 10, net30.Orders)
		assert.Equal(t, RiskHigh, net30.Risk)

		cod := chart.Terms[1]
		assert.Equal(t, "COD", cod.Term)
		assert.Equal(t, "28.57%", cod.SalesShare)
		assert.Equal(t, RiskLow, cod.Risk)
	})

	t.Run("preference matrix per customer category", func(t *testing.T) {
		distributor := chart.Preferences["Distributor"]
		require.Len(t, distributor, 2)
		assert.Equal(t, domain.TermPreference{Term: "Net 30", Share: "83.33%", Rank: 1}, distributor[0])
		assert.Equal(t, domain.TermPreference{Term: "COD", Share: "16.67%", Rank: 2}, distributor[1])

		retail := chart.Preferences["Retail"]
		require.Len(t, retail, 1)
		assert.Equal(t, 1, retail[0].Rank)
	})

	t.Run("monthly trend per term is chronological", func(t *testing.T) {
		trend := chart.Trends["Net 30"]
		require.Len(t, trend, 2)
		assert.Equal(t, "Jan-2024", trend[0].Month)
		assert.Equal(t, 600.0, trend[0].Sales)
		assert.Equal(t, "Feb-2024", trend[1].Month)
		assert.Equal(t, 400.0, trend[1].Sales)
	})
}

func TestPaymentTerms_EmptyInput(t *testing.T) {
	chart := paymentTerms{}.Process(map[string][]engine.Row{}, domain.SectionMeta{}).(domain.PaymentTermsChart)
	assert.Empty(t, chart.Terms)
	assert.NotNil(t, chart.Terms)
	assert.Empty(t, chart.Preferences)
	assert.Empty(t, chart.Trends)
}
