package svg

import (
	"fmt"
	"math"

	"ashby/domain/plot"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// logPadFactor pads derived log-mode bounds by a tenth of a decade so
// edge shapes do not touch the frame
const logPadFactor = 0.1

// linearPadRatio pads derived linear-mode bounds by a share of the
// data span
const linearPadRatio = 0.05

// resolveBounds returns the axis limits for one render: the request's
// explicit limits when present, otherwise limits derived from the
// extents of the resolved primitives.
func (r *Renderer) resolveBounds(series []plot.Series, req plot.Request) (plot.Limits, error) {
	if req.Limits != nil {
		return *req.Limits, nil
	}

	var xs, ys []float64
	for _, s := range series {
		p := s.Primitive
		lowX, highX := p.X-p.RX, p.X+p.RX
		lowY, highY := p.Y-p.RY, p.Y+p.RY
		if req.LogScale && (lowX <= 0 || lowY <= 0) {
			continue
		}
		xs = append(xs, lowX, highX)
		ys = append(ys, lowY, highY)
	}

	if len(xs) == 0 {
		// Nothing representable; fall back to a fixed window so an
		// empty chart still renders.
		if req.LogScale {
			return plot.Limits{XMin: 0.1, XMax: 10, YMin: 0.1, YMax: 10}, nil
		}
		return plot.Limits{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, nil
	}

	xMin, err := stats.Min(xs)
	if err != nil {
		return plot.Limits{}, err
	}
	xMax, err := stats.Max(xs)
	if err != nil {
		return plot.Limits{}, err
	}
	yMin, err := stats.Min(ys)
	if err != nil {
		return plot.Limits{}, err
	}
	yMax, err := stats.Max(ys)
	if err != nil {
		return plot.Limits{}, err
	}

	if req.LogScale {
		pad := math.Pow(10, logPadFactor)
		return plot.Limits{
			XMin: xMin / pad, XMax: xMax * pad,
			YMin: yMin / pad, YMax: yMax * pad,
		}, nil
	}

	xPad := linearPad(xMin, xMax)
	yPad := linearPad(yMin, yMax)
	return plot.Limits{
		XMin: xMin - xPad, XMax: xMax + xPad,
		YMin: yMin - yPad, YMax: yMax + yPad,
	}, nil
}

func linearPad(min, max float64) float64 {
	span := max - min
	if span == 0 {
		if max == 0 {
			return 1
		}
		return math.Abs(max) * linearPadRatio
	}
	return span * linearPadRatio
}

// scaler maps data coordinates into canvas pixels, in linear or
// log10 space
type scaler struct {
	bounds   plot.Limits
	logScale bool

	left, right, top, bottom int
}

func newScaler(bounds plot.Limits, logScale bool, config Config) *scaler {
	return &scaler{
		bounds:   bounds,
		logScale: logScale,
		left:     config.Margin,
		right:    config.Width - config.Margin,
		top:      config.Margin,
		bottom:   config.Height - config.Margin,
	}
}

func (s *scaler) x(v float64) int {
	frac := s.fraction(v, s.bounds.XMin, s.bounds.XMax)
	return s.left + int(math.Round(frac*float64(s.right-s.left)))
}

func (s *scaler) y(v float64) int {
	frac := s.fraction(v, s.bounds.YMin, s.bounds.YMax)
	return s.bottom - int(math.Round(frac*float64(s.bottom-s.top)))
}

// fraction places v within [min, max] as a 0..1 position, in log10
// space when log scaling is on. Degenerate windows collapse to the
// center.
func (s *scaler) fraction(v, min, max float64) float64 {
	if s.logScale {
		if v <= 0 || min <= 0 || max <= 0 {
			return 0
		}
		v, min, max = math.Log10(v), math.Log10(min), math.Log10(max)
	}
	if max == min {
		return 0.5
	}
	return (v - min) / (max - min)
}

// xTicks returns tick positions along the x axis in data coordinates
func (s *scaler) xTicks(logScale bool) []float64 {
	return ticks(s.bounds.XMin, s.bounds.XMax, logScale)
}

// yTicks returns tick positions along the y axis in data coordinates
func (s *scaler) yTicks(logScale bool) []float64 {
	return ticks(s.bounds.YMin, s.bounds.YMax, logScale)
}

const linearTickCount = 6

// ticks yields decade ticks (powers of ten) in log mode and an evenly
// spaced grid in linear mode.
func ticks(min, max float64, logScale bool) []float64 {
	if logScale {
		if min <= 0 || max <= min {
			return nil
		}
		var out []float64
		for exp := math.Ceil(math.Log10(min)); exp <= math.Floor(math.Log10(max)); exp++ {
			out = append(out, math.Pow(10, exp))
		}
		return out
	}

	if max <= min {
		return nil
	}
	grid := make([]float64, linearTickCount)
	floats.Span(grid, min, max)
	return grid
}

// formatTick renders a tick value compactly, switching to exponent
// notation outside a readable magnitude window.
func formatTick(v float64) string {
	abs := math.Abs(v)
	if v != 0 && (abs >= 1e4 || abs < 1e-3) {
		return fmt.Sprintf("%.0e", v)
	}
	return fmt.Sprintf("%g", v)
}
