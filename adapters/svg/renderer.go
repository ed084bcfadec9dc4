package svg

import (
	"fmt"
	"io"
	"log"

	"ashby/domain/material"
	"ashby/domain/plot"

	svgo "github.com/ajstarks/svgo"
)

// Config holds rendering geometry and style settings
type Config struct {
	Width            int `json:"width"`
	Height           int `json:"height"`
	Margin           int `json:"margin"`            // plot frame inset on every side, px
	PointRadius      int `json:"point_radius"`      // marker radius for point primitives, px
	GuidelineSamples int `json:"guideline_samples"` // sample count along a reference line
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           700,
		Margin:           70,
		PointRadius:      5,
		GuidelineSamples: 32,
	}
}

// Renderer draws resolved plot datasets as SVG scatter charts. It is
// the rendering collaborator of the resolution pipeline: it receives
// already-ordered, already-colored series and only maps geometry onto
// the canvas.
type Renderer struct {
	config Config
}

// NewRenderer creates a renderer with the given config
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// Render writes the chart for one plot request. Axis limits come from
// the request when given and are derived from the data otherwise. In
// log mode, shapes that extend to non-positive coordinates cannot be
// mapped and are dropped with a log line rather than failing the
// whole chart.
func (r *Renderer) Render(w io.Writer, series []plot.Series, req plot.Request, legend *material.CategoryColors) error {
	bounds, err := r.resolveBounds(series, req)
	if err != nil {
		return err
	}

	sc := newScaler(bounds, req.LogScale, r.config)

	canvas := svgo.New(w)
	canvas.Start(r.config.Width, r.config.Height)
	canvas.Rect(0, 0, r.config.Width, r.config.Height, "fill:white")

	r.drawGrid(canvas, sc, req.LogScale)
	r.drawFrame(canvas, req)

	dropped := 0
	for _, s := range series {
		if !r.drawPrimitive(canvas, sc, s, req.LogScale) {
			dropped++
		}
	}
	if dropped > 0 {
		log.Printf("[Renderer] %d shapes outside the representable range dropped", dropped)
	}

	if req.Guideline != nil {
		r.drawGuideline(canvas, sc, *req.Guideline, req.LogScale)
	}

	if legend != nil && legend.Len() > 0 {
		r.drawLegend(canvas, legend)
	}

	canvas.End()
	return nil
}

// drawFrame draws the plot border and the axis labels
func (r *Renderer) drawFrame(canvas *svgo.SVG, req plot.Request) {
	m := r.config.Margin
	canvas.Rect(m, m, r.config.Width-2*m, r.config.Height-2*m,
		"fill:none;stroke:black;stroke-width:1")

	canvas.Text(r.config.Width/2, r.config.Height-m/3, req.XLabel(),
		"text-anchor:middle;font-size:14px;font-family:sans-serif")

	// Rotated y label along the left edge
	x, y := m/3, r.config.Height/2
	canvas.Text(x, y, req.YLabel(),
		fmt.Sprintf("text-anchor:middle;font-size:14px;font-family:sans-serif;transform:rotate(-90deg);transform-origin:%dpx %dpx", x, y))
}

// drawGrid draws decade lines in log mode and evenly spaced ticks in
// linear mode, with tick value labels along both axes.
func (r *Renderer) drawGrid(canvas *svgo.SVG, sc *scaler, logScale bool) {
	const gridStyle = "stroke:#cccccc;stroke-width:1;stroke-dasharray:4,4"
	const tickStyle = "text-anchor:middle;font-size:11px;font-family:sans-serif;fill:#555555"

	m := r.config.Margin
	top, bottom := m, r.config.Height-m
	left, right := m, r.config.Width-m

	for _, tick := range sc.xTicks(logScale) {
		px := sc.x(tick)
		if px <= left || px >= right {
			continue
		}
		canvas.Line(px, top, px, bottom, gridStyle)
		canvas.Text(px, bottom+16, formatTick(tick), tickStyle)
	}
	for _, tick := range sc.yTicks(logScale) {
		py := sc.y(tick)
		if py <= top || py >= bottom {
			continue
		}
		canvas.Line(left, py, right, py, gridStyle)
		canvas.Text(left-24, py+4, formatTick(tick), tickStyle)
	}
}

// drawPrimitive maps one series entry onto the canvas. Ellipses with a
// zero radius on one axis degrade to capped line segments, and on both
// axes to a plain marker, mirroring how range data collapses.
func (r *Renderer) drawPrimitive(canvas *svgo.SVG, sc *scaler, s plot.Series, logScale bool) bool {
	p := s.Primitive

	if logScale && (p.X-p.RX <= 0 || p.Y-p.RY <= 0) {
		return false
	}

	if p.Kind == plot.KindPoint {
		canvas.Circle(sc.x(p.X), sc.y(p.Y), r.config.PointRadius,
			fmt.Sprintf("fill:%s;stroke:black;stroke-width:1", s.Color))
		return true
	}

	x1, x2 := sc.x(p.X-p.RX), sc.x(p.X+p.RX)
	y1, y2 := sc.y(p.Y+p.RY), sc.y(p.Y-p.RY) // y axis points down in svg
	cx, cy := (x1+x2)/2, (y1+y2)/2
	rx, ry := (x2-x1)/2, (y2-y1)/2

	lineStyle := fmt.Sprintf("stroke:%s;stroke-width:3;stroke-linecap:round", s.Color)
	switch {
	case rx > 0 && ry > 0:
		canvas.Ellipse(cx, cy, rx, ry,
			fmt.Sprintf("fill:%s;fill-opacity:0.3;stroke:%s;stroke-width:1", s.Color, s.Color))
	case rx > 0:
		canvas.Line(x1, cy, x2, cy, lineStyle)
	case ry > 0:
		canvas.Line(cx, y1, cx, y2, lineStyle)
	default:
		canvas.Circle(cx, cy, r.config.PointRadius,
			fmt.Sprintf("fill:%s;stroke:black;stroke-width:1", s.Color))
	}
	return true
}

// drawLegend lays category swatches in rows above the plot frame
func (r *Renderer) drawLegend(canvas *svgo.SVG, legend *material.CategoryColors) {
	const (
		swatch  = 12
		entryW  = 150
		rowH    = 18
		textPad = 4
	)
	m := r.config.Margin
	perRow := (r.config.Width - 2*m) / entryW
	if perRow < 1 {
		perRow = 1
	}

	for i, category := range legend.Categories() {
		color, _ := legend.Color(category)
		x := m + (i%perRow)*entryW
		y := 8 + (i/perRow)*rowH
		canvas.Rect(x, y, swatch, swatch, fmt.Sprintf("fill:%s", color))
		canvas.Text(x+swatch+textPad, y+swatch-2, category,
			"font-size:12px;font-family:sans-serif")
	}
}
