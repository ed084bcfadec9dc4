package tabular

import (
	"ashby/domain/material"
	"ashby/domain/plot"
	"ashby/domain/table"
)

// axisState is the per-axis outcome before the row-level decision
type axisState int

const (
	axisUnusable axisState = iota // no number available on this axis
	axisPoint                     // exactly one usable number
	axisInterval                  // both bounds present, lo <= hi
)

// axisResolution carries the resolved extent of one axis for one row
type axisResolution struct {
	state  axisState
	lo, hi float64 // equal for axisPoint
}

func (a axisResolution) center() float64 { return (a.lo + a.hi) / 2 }
func (a axisResolution) radius() float64 { return (a.hi - a.lo) / 2 }

// Resolver converts one data row into a plot primitive for a chosen
// pair of axes ("mix" mode: points and ranges coexist in one table).
// Resolution never fails; rows without usable numbers on either axis
// are skipped, which is how partial data stays out of the chart
// without being treated as an error.
type Resolver struct {
	sanitizer *Sanitizer
}

// NewResolver creates a resolver backed by the given sanitizer
func NewResolver(sanitizer *Sanitizer) *Resolver {
	return &Resolver{sanitizer: sanitizer}
}

// Resolve returns the primitive for one row under the two axis
// descriptors. The second return is false when the row is unusable on
// either axis and must be excluded from the plot.
func (r *Resolver) Resolve(row table.Row, xDesc, yDesc material.ColumnDescriptor) (plot.Primitive, bool) {
	x := r.resolveAxis(row, xDesc)
	y := r.resolveAxis(row, yDesc)

	if x.state == axisUnusable || y.state == axisUnusable {
		return plot.Primitive{}, false
	}

	if x.state == axisPoint && y.state == axisPoint {
		return plot.NewPoint(x.lo, y.lo), true
	}

	// At least one interval: an ellipse centered on each axis midpoint
	// with half the interval width as radius. A point axis contributes
	// a zero-width interval, so its radius is zero.
	return plot.NewEllipse(x.center(), y.center(), x.radius(), y.radius()), true
}

// resolveAxis sanitizes the axis's source column(s) for this row and
// folds them into a point, an interval, or an unusable marker.
func (r *Resolver) resolveAxis(row table.Row, desc material.ColumnDescriptor) axisResolution {
	if desc.Kind == material.KindSingle {
		v := r.sanitizer.Sanitize(row[desc.ValueColumn])
		if v.IsMissing {
			return axisResolution{state: axisUnusable}
		}
		return axisResolution{state: axisPoint, lo: v.Num, hi: v.Num}
	}

	low := r.sanitizer.Sanitize(row[desc.LowColumn])
	high := r.sanitizer.Sanitize(row[desc.HighColumn])

	switch {
	case low.IsNumber() && high.IsNumber():
		lo, hi := low.Num, high.Num
		// Bounds given out of order are reordered so the radius
		// stays non-negative.
		if lo > hi {
			lo, hi = hi, lo
		}
		return axisResolution{state: axisInterval, lo: lo, hi: hi}
	case low.IsNumber():
		return axisResolution{state: axisPoint, lo: low.Num, hi: low.Num}
	case high.IsNumber():
		return axisResolution{state: axisPoint, lo: high.Num, hi: high.Num}
	default:
		// Bounds take precedence; the bare value column only fills in
		// for rows where both bounds are missing.
		if desc.ValueColumn != "" {
			v := r.sanitizer.Sanitize(row[desc.ValueColumn])
			if v.IsNumber() {
				return axisResolution{state: axisPoint, lo: v.Num, hi: v.Num}
			}
		}
		return axisResolution{state: axisUnusable}
	}
}
