package svg

import (
	"math"

	"ashby/domain/plot"

	svgo "github.com/ajstarks/svgo"
	"gonum.org/v1/gonum/floats"
)

// drawGuideline draws a material-index reference line sampled across
// its configured x range. On log axes the line is the power law
// y = intercept * x^power; on linear axes y = power*x + intercept.
func (r *Renderer) drawGuideline(canvas *svgo.SVG, sc *scaler, g plot.Guideline, logScale bool) {
	samples := r.config.GuidelineSamples
	if samples < 2 {
		samples = 2
	}

	xs := make([]float64, samples)
	floats.Span(xs, g.XMin, g.XMax)

	px := make([]int, 0, samples)
	py := make([]int, 0, samples)
	for _, x := range xs {
		var y float64
		if logScale {
			if x <= 0 {
				continue
			}
			y = g.Intercept * math.Pow(x, g.Power)
			if y <= 0 {
				continue
			}
		} else {
			y = g.Power*x + g.Intercept
		}
		px = append(px, sc.x(x))
		py = append(py, sc.y(y))
	}

	if len(px) < 2 {
		return
	}

	canvas.Polyline(px, py, "fill:none;stroke:black;stroke-width:1;stroke-dasharray:6,4")

	if g.Label != "" {
		mid := len(px) / 2
		canvas.Text(px[mid], py[mid]-6, g.Label,
			"font-size:12px;font-family:sans-serif;font-style:italic")
	}
}
