package sections

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"

	"github.com/commerce-tools/marketlens/pkg/models/domain"
	"github.com/commerce-tools/marketlens/pkg/store/engine"
)

// Registry maps section types to processors. NewRegistry wires every known
// type; an unknown type at dispatch time is a warning, not an error — the
// section passes through with its content untouched.
type Registry struct {
	processors map[domain.SectionType]Processor
}

// NewRegistry builds the registry with a processor for every known section
// type.
func NewRegistry() *Registry {
	r := &Registry{processors: make(map[domain.SectionType]Processor)}
	r.register(
		salesOverview{},
		platformSalesValue{},
		categorySalesValue{},
		subCategorySalesValue{},
		volumeSalesValue{},
		brandPerformancePlatform{},
		brandPerformanceSubCategory{},
		topCategories{},
		topReseller{},
		topListingPerformance{},
		topBrandChannel{},
		paymentTerms{},
		channelShare{},
		monthlyGrowth{},
		brandShareTrend{},
	)
	return r
}

func (r *Registry) register(processors ...Processor) {
	for _, p := range processors {
		r.processors[p.SectionType()] = p
	}
}

// RegisteredTypes lists every section type with a processor.
func (r *Registry) RegisteredTypes() []domain.SectionType {
	return maps.Keys(r.processors)
}

// Lookup returns the processor for a section type.
func (r *Registry) Lookup(t domain.SectionType) (Processor, bool) {
	p, ok := r.processors[t]
	return p, ok
}

// Dispatch runs the section's processor over its keyed query results and
// merges the fresh chart data into the section content. Only chartData is
// replaced; titles, free text, insights and query definitions pass through
// — re-running the pipeline never discards user-authored content.
func (r *Registry) Dispatch(
	ctx context.Context,
	section domain.Section,
	results map[string][]engine.Row,
	meta domain.SectionMeta,
) domain.Section {
	processor, ok := r.processors[section.Type]
	if !ok {
		zerolog.Ctx(ctx).Warn().
			Str("section", section.ID).
			Str("type", string(section.Type)).
			Msg("no processor registered for section type, passing through")
		return section
	}

	chartData := processor.Process(results, meta)
	section.Content = section.Content.WithChartData(chartData)
	return section
}
