package app

import (
	"log"
	"sync"

	"ashby/adapters/tabular"
	"ashby/domain/core"
	"ashby/domain/material"
	"ashby/domain/plot"
	"ashby/domain/table"
)

// Dataset is one loaded table together with its per-load derived
// state. Schema and colors are built once when the table is loaded
// and read-many afterwards; a reload replaces the whole Dataset so
// stale descriptors or colors can never leak into the next build.
type Dataset struct {
	ID     core.DatasetID
	Name   string
	Table  *table.Table
	Schema material.Schema
	Colors *material.CategoryColors
}

// PlotService orchestrates the resolution pipeline: classification
// and color assignment at load time, then row-by-row primitive
// resolution on each plot request.
type PlotService struct {
	sanitizer  *tabular.Sanitizer
	classifier *tabular.Classifier
	resolver   *tabular.Resolver

	mu      sync.RWMutex
	dataset *Dataset
}

// NewPlotService creates a plot service with default sanitization
// rules
func NewPlotService() *PlotService {
	sanitizer := tabular.NewSanitizer(tabular.DefaultSanitizerConfig())
	return &PlotService{
		sanitizer:  sanitizer,
		classifier: tabular.NewClassifier(sanitizer),
		resolver:   tabular.NewResolver(sanitizer),
	}
}

// LoadTable installs a freshly loaded table as the current dataset.
// Derived property columns are appended first, then classification and
// color assignment are re-run from scratch; nothing from a previously
// loaded table survives.
func (s *PlotService) LoadTable(name string, t *table.Table) (*Dataset, error) {
	if !t.HasColumn(material.CategoryColumn) {
		return nil, core.NewCategoryColumnMissingError(material.CategoryColumn)
	}
	if t.RowCount() == 0 {
		return nil, core.ErrEmptyTable
	}

	t = tabular.DeriveProperties(t, s.sanitizer)

	dataset := &Dataset{
		ID:     core.NewDatasetID(),
		Name:   name,
		Table:  t,
		Schema: s.classifier.Classify(t),
		Colors: tabular.AssignColors(t.Column(material.CategoryColumn)),
	}

	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()

	log.Printf("[PlotService] dataset %s loaded: %q, %d rows, %d axis options, %d categories",
		dataset.ID, name, t.RowCount(), len(dataset.Schema.AxisOptions), dataset.Colors.Len())
	return dataset, nil
}

// Dataset returns the currently loaded dataset, if any
func (s *PlotService) Dataset() (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.dataset != nil
}

// AxisOptions returns the property names selectable for either axis.
// Recomputed at load time per table; empty when nothing is loaded.
func (s *PlotService) AxisOptions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil
	}
	options := make([]string, len(s.dataset.Schema.AxisOptions))
	copy(options, s.dataset.Schema.AxisOptions)
	return options
}

// Build resolves every row of the current dataset against the chosen
// X and Y properties into the ordered plot dataset. Rows unusable on
// either axis are silently excluded; asking for a property that has
// no descriptor is a contract violation and errors.
func (s *PlotService) Build(xProperty, yProperty string) ([]plot.Series, error) {
	s.mu.RLock()
	dataset := s.dataset
	s.mu.RUnlock()

	if dataset == nil {
		return nil, core.ErrNoDatasetLoaded
	}

	xDesc, ok := dataset.Schema.Descriptor(xProperty)
	if !ok {
		return nil, core.NewPropertyNotFoundError(xProperty)
	}
	yDesc, ok := dataset.Schema.Descriptor(yProperty)
	if !ok {
		return nil, core.NewPropertyNotFoundError(yProperty)
	}

	series := make([]plot.Series, 0, dataset.Table.RowCount())
	skipped := 0
	for _, row := range dataset.Table.Rows {
		primitive, usable := s.resolver.Resolve(row, xDesc, yDesc)
		if !usable {
			skipped++
			continue
		}

		category := material.NormalizeCategory(row[material.CategoryColumn])
		// Colors were assigned over the full category column at load
		// time, so every emitted row has a defined color.
		color, _ := dataset.Colors.Color(category)

		series = append(series, plot.Series{
			Category:  category,
			Color:     color,
			Primitive: primitive,
		})
	}

	log.Printf("[PlotService] built %s vs %s: %d primitives, %d rows skipped",
		xProperty, yProperty, len(series), skipped)
	return series, nil
}

// Legend returns the category palette of the current dataset for
// legend construction, or nil when nothing is loaded
func (s *PlotService) Legend() *material.CategoryColors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil
	}
	return s.dataset.Colors
}
