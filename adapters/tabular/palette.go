package tabular

import (
	"fmt"
	"math"

	"ashby/domain/material"
)

// Hue wheel parameters. Saturation and value are fixed; only hue is
// stepped, which keeps any number of categories maximally separated.
const (
	paletteSaturation = 0.62
	paletteValue      = 0.85
)

// singleCategoryColor is used when the table has exactly one category
const singleCategoryColor = "#4a78b5"

// AssignColors maps every distinct category to a color. Cells are
// coerced to canonical text first, distinct values collected in
// first-occurrence order, and hues spread evenly over that order. The
// mapping is total: every category appearing anywhere in the column
// has exactly one color.
func AssignColors(categoryCells []string) *material.CategoryColors {
	var order []string
	seen := make(map[string]bool)
	for _, cell := range categoryCells {
		category := material.NormalizeCategory(cell)
		if seen[category] {
			continue
		}
		seen[category] = true
		order = append(order, category)
	}

	colors := make(map[string]string, len(order))
	if len(order) == 1 {
		colors[order[0]] = singleCategoryColor
		return material.NewCategoryColors(order, colors)
	}

	for i, category := range order {
		hue := float64(i) / float64(len(order))
		colors[category] = hsvToHex(hue, paletteSaturation, paletteValue)
	}
	return material.NewCategoryColors(order, colors)
}

// hsvToHex converts an HSV triple (all channels in [0,1]) to a hex
// RGB string using the standard six-sector conversion.
func hsvToHex(h, s, v float64) string {
	h = h - math.Floor(h) // wrap into [0,1)
	sector := h * 6
	i := int(sector) % 6
	f := sector - math.Floor(sector)

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)))
}
