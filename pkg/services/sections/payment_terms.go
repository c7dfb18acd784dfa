package sections

import (
	"sort"
	"strings"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/services/aggregate"
	"github.com/commerce-tools/marketlens/pkg/services/format"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// Collection-period risk tiers for recognized payment terms, keyed by the
// lowercased label. Unrecognized terms fall back to RiskLow; extending the
// table is the supported way to cover a new term.
const (
	RiskHigh   = "High"
	RiskMedium = "Medium"
	RiskLow    = "Low"
)

var riskByTerm = map[string]string{
	"net 30":           RiskHigh,
	"net 45":           RiskHigh,
	"net 60":           RiskHigh,
	"net 14":           RiskMedium,
	"net 15":           RiskMedium,
	"net 7":            RiskLow,
	"cod":              RiskLow,
	"cash on delivery": RiskLow,
	"prepaid":          RiskLow,
	"advance payment":  RiskLow,
}

// TermRisk returns the collection-risk tier for a payment-term label.
func TermRisk(term string) string {
	if risk, ok := riskByTerm[strings.ToLower(strings.TrimSpace(term))]; ok {
		return risk
	}
	return RiskLow
}

// paymentTerms aggregates sales by (payment term, customer category):
// share-of-total per term, a ranked preference matrix per customer
// category, a monthly trend per term and a risk tier per term.
type paymentTerms struct{}

func (paymentTerms) SectionType() domain.SectionType { return domain.SectionPaymentTerms }

func (paymentTerms) Process(results map[string][]engine.Row, _ domain.SectionMeta) any {
	rows := rowsFor(results, "payments", "payment_terms")
	chart := domain.PaymentTermsChart{
		Terms:       []domain.PaymentTermSummary{},
		Preferences: map[string][]domain.TermPreference{},
		Trends:      map[string][]domain.TermTrendPoint{},
	}
	if len(rows) == 0 {
		return chart
	}

	termOf := func(r engine.Row) string {
		return text(r, "PaymentTerm", "payment_term", "Term", "term")
	}
	customerOf := func(r engine.Row) string {
		return text(r, "CustomerCategory", "customer_category", "CustomerType")
	}

	var totalSales, totalOrders float64
	termSales := make(map[string]float64)
	termOrders := make(map[string]float64)
	byCustomer := aggregate.Series{}
	trend := aggregate.Series{}

	for _, r := range rows {
		term := termOf(r)
		sales := salesOf(r)
		orders := ordersOf(r)

		totalSales += sales
		totalOrders += orders
		termSales[term] += sales
		termOrders[term] += orders
		byCustomer.Add(customerOf(r), term, sales)
		trend.Add(monthOf(r), term, sales)
	}

	terms := make([]string, 0, len(termSales))
	for term := range termSales {
		terms = append(terms, term)
	}
	sort.SliceStable(terms, func(i, j int) bool {
		if termSales[terms[i]] != termSales[terms[j]] {
			return termSales[terms[i]] > termSales[terms[j]]
		}
		return terms[i] < terms[j]
	})

	for _, term := range terms {
		chart.Terms = append(chart.Terms, domain.PaymentTermSummary{
			Term:       term,
			Sales:      format.Magnitude(termSales[term]),
			SalesShare: format.Percent(shareOf(termSales[term], totalSales)),
			Orders:     int(termOrders[term]),
			OrderShare: format.Percent(shareOf(termOrders[term], totalOrders)),
			Risk:       TermRisk(term),
		})
	}

	// Preference matrix: per customer category, terms ranked by revenue share.
	for customer, cell := range byCustomer {
		customerTotal := 0.0
		for _, v := range cell {
			customerTotal += v
		}

		prefs := make([]domain.TermPreference, 0, len(cell))
		for term, v := range cell {
			prefs = append(prefs, domain.TermPreference{
				Term:  term,
				Share: format.Percent(shareOf(v, customerTotal)),
			})
		}
		sort.SliceStable(prefs, func(i, j int) bool {
			if cell[prefs[i].Term] != cell[prefs[j].Term] {
				return cell[prefs[i].Term] > cell[prefs[j].Term]
			}
			return prefs[i].Term < prefs[j].Term
		})
		for i := range prefs {
			prefs[i].Rank = i + 1
		}
		chart.Preferences[customer] = prefs
	}

	// Monthly trend per term, chronological.
	for _, key := range aggregate.SortedKeys(trend) {
		for term, sales := range trend[key] {
			chart.Trends[term] = append(chart.Trends[term], domain.TermTrendPoint{
				Month: format.MonthLabel(key),
				Sales: sales,
				Label: format.Magnitude(sales),
			})
		}
	}

	return chart
}

func shareOf(part, total float64) *float64 {
	if total <= 0 {
		return nil
	}
	pct := part / total * 100
	return &pct
}
