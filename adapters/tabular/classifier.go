package tabular

import (
	"log"
	"sort"
	"strings"

	"ashby/domain/material"
	"ashby/domain/table"
)

// Bound suffixes follow the low/high pairing convention of material
// property sheets: "Density low" / "Density high" describe one ranged
// property named "Density". Matching is literal and case-sensitive;
// near-miss variants stay individual single-value columns.
const (
	lowSuffix  = " low"
	highSuffix = " high"
)

// Classifier groups a table's columns into property descriptors and
// determines which properties are selectable as axes. Classification
// is re-run from scratch on every load; nothing is cached across
// tables.
type Classifier struct {
	sanitizer *Sanitizer
}

// NewClassifier creates a classifier backed by the given sanitizer
func NewClassifier(sanitizer *Sanitizer) *Classifier {
	return &Classifier{sanitizer: sanitizer}
}

// headerToken is the parsed form of one column header
type headerToken struct {
	base   string // property name with any bound suffix removed
	isLow  bool
	isHigh bool
}

// tokenizeHeader splits a header into its base property name and
// bound designation. Headers that are nothing but a suffix keep their
// literal name as the base.
func tokenizeHeader(header string) headerToken {
	if base, ok := strings.CutSuffix(header, lowSuffix); ok && base != "" {
		return headerToken{base: base, isLow: true}
	}
	if base, ok := strings.CutSuffix(header, highSuffix); ok && base != "" {
		return headerToken{base: base, isHigh: true}
	}
	return headerToken{base: header}
}

// Classify scans the table headers and builds the per-load schema.
// The category column is excluded entirely; a low/high column pair
// becomes one range descriptor; every other column becomes a
// single-value descriptor under its own header. A bare column sharing
// a paired property's name is folded into the range descriptor as its
// per-row fallback. A lone bound column with no partner is ambiguous
// and stays single under its literal header rather than being dropped.
func (c *Classifier) Classify(t *table.Table) material.Schema {
	type pairing struct {
		lowColumn  string
		highColumn string
	}
	pairs := make(map[string]*pairing)
	var singles []string

	for _, header := range t.Headers {
		if header == material.CategoryColumn {
			continue
		}
		token := tokenizeHeader(header)
		switch {
		case token.isLow:
			p := pairs[token.base]
			if p == nil {
				p = &pairing{}
				pairs[token.base] = p
			}
			p.lowColumn = header
		case token.isHigh:
			p := pairs[token.base]
			if p == nil {
				p = &pairing{}
				pairs[token.base] = p
			}
			p.highColumn = header
		default:
			singles = append(singles, header)
		}
	}

	descriptors := make(map[string]material.ColumnDescriptor)

	for base, p := range pairs {
		if p.lowColumn != "" && p.highColumn != "" {
			descriptors[base] = material.ColumnDescriptor{
				Property:   base,
				Kind:       material.KindRange,
				LowColumn:  p.lowColumn,
				HighColumn: p.highColumn,
			}
			continue
		}
		// One-sided pair: no partner column exists, so the bound
		// column is kept as an individual single-value property.
		if p.lowColumn != "" {
			singles = append(singles, p.lowColumn)
		}
		if p.highColumn != "" {
			singles = append(singles, p.highColumn)
		}
	}

	for _, header := range singles {
		if existing, ok := descriptors[header]; ok && existing.Kind == material.KindRange {
			// A bare value column alongside its own low/high pair: the
			// pair stays authoritative and the bare column becomes the
			// per-row fallback when both bounds are missing.
			existing.ValueColumn = header
			descriptors[header] = existing
			continue
		}
		descriptors[header] = material.ColumnDescriptor{
			Property:    header,
			Kind:        material.KindSingle,
			ValueColumn: header,
		}
	}

	axisOptions := c.eligibleAxisOptions(t, descriptors)

	log.Printf("[Classifier] %d columns classified into %d properties (%d selectable as axes)",
		len(t.Headers), len(descriptors), len(axisOptions))

	return material.Schema{
		Descriptors: descriptors,
		AxisOptions: axisOptions,
	}
}

// eligibleAxisOptions keeps only properties whose source column(s)
// sanitize to at least one number across the whole table. Purely
// textual or fully-missing properties never become selectable axes.
func (c *Classifier) eligibleAxisOptions(t *table.Table, descriptors map[string]material.ColumnDescriptor) []string {
	var options []string
	for property, descriptor := range descriptors {
		eligible := false
		for _, column := range descriptor.SourceColumns() {
			if c.sanitizer.HasNumeric(t.Column(column)) {
				eligible = true
				break
			}
		}
		if eligible {
			options = append(options, property)
		}
	}
	sort.Strings(options)
	return options
}
