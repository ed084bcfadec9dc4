package tabular

import (
	"log"
	"strconv"

	"ashby/domain/material"
	"ashby/domain/table"
)

const (
	poissonProperty = "Poisson"

	// PoissonDifferenceProperty is the derived hyperbolic Poisson ratio
	// 1/(1+v), appended as extra columns when a loaded table carries
	// Poisson data.
	PoissonDifferenceProperty = "Poisson difference"
)

// DeriveProperties appends computed property columns to a freshly
// loaded table and returns the widened table. The input table is left
// untouched; when nothing can be derived it is returned as-is.
//
// Derived cells are written as raw text so they pass through the same
// sanitization and classification as every loaded column.
func DeriveProperties(t *table.Table, sanitizer *Sanitizer) *table.Table {
	lowCol := poissonProperty + lowSuffix
	highCol := poissonProperty + highSuffix

	hasBounds := t.HasColumn(lowCol) || t.HasColumn(highCol)
	hasBare := t.HasColumn(poissonProperty)
	if !hasBounds && !hasBare {
		return t
	}

	headers := make([]string, len(t.Headers), len(t.Headers)+2)
	copy(headers, t.Headers)
	if hasBounds {
		headers = append(headers, PoissonDifferenceProperty+lowSuffix, PoissonDifferenceProperty+highSuffix)
	} else {
		headers = append(headers, PoissonDifferenceProperty)
	}

	rows := make([]table.Row, len(t.Rows))
	for i, row := range t.Rows {
		widened := make(table.Row, len(row)+2)
		for k, v := range row {
			widened[k] = v
		}
		if hasBounds {
			// 1/(1+v) is decreasing, so the bounds swap sides.
			widened[PoissonDifferenceProperty+lowSuffix] = hyperbolicPoisson(sanitizer.Sanitize(row[highCol]))
			widened[PoissonDifferenceProperty+highSuffix] = hyperbolicPoisson(sanitizer.Sanitize(row[lowCol]))
		} else {
			widened[PoissonDifferenceProperty] = hyperbolicPoisson(sanitizer.Sanitize(row[poissonProperty]))
		}
		rows[i] = widened
	}

	log.Printf("[Derived] %s columns appended for %d rows", PoissonDifferenceProperty, len(rows))
	return &table.Table{Headers: headers, Rows: rows}
}

// hyperbolicPoisson formats 1/(1+v) as a raw cell, empty when the
// source value is missing or the transform is undefined.
func hyperbolicPoisson(v material.Value) string {
	if v.IsMissing || v.Num == -1 {
		return ""
	}
	return strconv.FormatFloat(1/(1+v.Num), 'g', -1, 64)
}
