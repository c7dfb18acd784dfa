package sections

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

func TestNewRegistry_CoversEveryKnownType(t *testing.T) {
	r := NewRegistry()

	for _, sectionType := range domain.KnownSectionTypes() {
		_, ok := r.Lookup(sectionType)
		assert.True(t, ok, "no processor registered for %s", sectionType)
	}

	assert.Len(t, r.RegisteredTypes(), len(domain.KnownSectionTypes()))
}

func TestProcessors_EmptyInputSafety(t *testing.T) {
	r := NewRegistry()

	inputs := []map[string][]engine.Row{
		{},
		{"q1": {}},
		nil,
	}

	for _, sectionType := range domain.KnownSectionTypes() {
		processor, ok := r.Lookup(sectionType)
		require.True(t, ok)

		for _, input := range inputs {
			var chart any
			assert.NotPanics(t, func() {
				chart = processor.Process(input, domain.SectionMeta{})
			}, "%s", sectionType)

			encoded, err := json.Marshal(chart)
			require.NoError(t, err, "%s", sectionType)
			assert.NotContains(t, string(encoded), "null",
				"%s must yield its empty shape, not null", sectionType)
		}
	}
}

func TestDispatch_MergePreservesForeignFields(t *testing.T) {
	r := NewRegistry()

	section := domain.Section{
		ID:   "s1",
		Type: domain.SectionSalesOverview,
		Content: domain.SectionContent{
			"text":     "foo",
			"insights": []any{"keep me"},
			"queries":  []any{map[string]any{"id": "sales", "query": "SELECT 1"}},
			"chartData": []any{
				map[string]any{"Month": "stale"},
			},
		},
	}

	results := map[string][]engine.Row{
		"sales": {{"Month": "2024-01", "totalsales": "1000000000"}},
	}

	out := r.Dispatch(context.Background(), section, results, domain.SectionMeta{})

	assert.Equal(t, "foo", out.Content["text"])
	assert.Equal(t, []any{"keep me"}, out.Content["insights"])
	assert.NotNil(t, out.Content["queries"])

	chart, ok := out.Content["chartData"].([]domain.TimeSeriesRow)
	require.True(t, ok, "chartData replaced with fresh rows")
	require.Len(t, chart, 1)
	assert.Equal(t, "1.0 Bio", chart[0].SumOfGMV)

	// the input section's content is not mutated in place
	stale := section.Content["chartData"].([]any)
	assert.Equal(t, map[string]any{"Month": "stale"}, stale[0])
}

func TestDispatch_UnknownTypePassesThrough(t *testing.T) {
	r := NewRegistry()

	section := domain.Section{
		ID:   "s2",
		Type: "mystery_widget",
		Content: domain.SectionContent{
			"text": "untouched",
		},
	}

	out := r.Dispatch(context.Background(), section, map[string][]engine.Row{}, domain.SectionMeta{})

	assert.Equal(t, section, out)
	_, hasChart := out.Content["chartData"]
	assert.False(t, hasChart)
}

func TestTemplates_ImmutableCatalog(t *testing.T) {
	first := Templates()
	for _, sectionType := range domain.KnownSectionTypes() {
		assert.NotEmpty(t, first[sectionType], "no default query for %s", sectionType)
	}

	// mutating a copy must not leak into the catalog
	first[domain.SectionSalesOverview][0].SQL = "DROP TABLE sales"
	second := Templates()
	assert.NotEqual(t, "DROP TABLE sales", second[domain.SectionSalesOverview][0].SQL)
}
