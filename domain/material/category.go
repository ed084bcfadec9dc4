package material

import "strings"

// NormalizeCategory coerces a raw grouping cell to its canonical text
// form. Every cell in the category column goes through this before
// distinctness is computed, so numeric-looking cells and their quoted
// forms collapse to one category.
func NormalizeCategory(raw string) string {
	return strings.TrimSpace(raw)
}

// CategoryColors maps each distinct category to a stable display
// color. Entries keep first-appearance order for the lifetime of one
// loaded table, which also fixes legend order.
type CategoryColors struct {
	order  []string
	colors map[string]string
}

// NewCategoryColors builds the mapping from categories in appearance
// order and their assigned colors. Both slices must be parallel.
func NewCategoryColors(order []string, colors map[string]string) *CategoryColors {
	return &CategoryColors{order: order, colors: colors}
}

// Color returns the hex color assigned to a category
func (c *CategoryColors) Color(category string) (string, bool) {
	color, ok := c.colors[category]
	return color, ok
}

// Categories returns the categories in first-appearance order
func (c *CategoryColors) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of distinct categories
func (c *CategoryColors) Len() int {
	return len(c.order)
}
