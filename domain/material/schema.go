package material

// CategoryColumn is the mandatory grouping column every material
// properties table must carry. It is excluded from column
// classification and drives coloring and the legend.
const CategoryColumn = "Category"

// PropertyKind distinguishes single-column properties from low/high
// range pairs.
type PropertyKind string

const (
	KindSingle PropertyKind = "single"
	KindRange  PropertyKind = "range"
)

// ColumnDescriptor ties a property name to its source column(s).
// A single property references exactly one column named after the bare
// property; a range property references the low and high bound
// columns, plus an optional bare value column used per row as a
// fallback when both bounds are missing.
type ColumnDescriptor struct {
	Property    string       `json:"property"`
	Kind        PropertyKind `json:"kind"`
	ValueColumn string       `json:"value_column,omitempty"` // KindSingle, or fallback for KindRange
	LowColumn   string       `json:"low_column,omitempty"`   // KindRange only
	HighColumn  string       `json:"high_column,omitempty"`  // KindRange only
}

// SourceColumns returns the column headers backing this property
func (d ColumnDescriptor) SourceColumns() []string {
	if d.Kind == KindRange {
		cols := []string{d.LowColumn, d.HighColumn}
		if d.ValueColumn != "" {
			cols = append(cols, d.ValueColumn)
		}
		return cols
	}
	return []string{d.ValueColumn}
}

// Schema is the per-load classification of a table's columns. It must
// be rebuilt from scratch whenever a new table is loaded; descriptors
// from a previous table are never reused.
type Schema struct {
	Descriptors map[string]ColumnDescriptor `json:"descriptors"`
	AxisOptions []string                    `json:"axis_options"` // sorted, selectable properties only
}

// Descriptor looks up the descriptor for a property name
func (s *Schema) Descriptor(property string) (ColumnDescriptor, bool) {
	d, ok := s.Descriptors[property]
	return d, ok
}

// IsAxisOption reports whether a property is selectable as an axis
func (s *Schema) IsAxisOption(property string) bool {
	for _, option := range s.AxisOptions {
		if option == property {
			return true
		}
	}
	return false
}
