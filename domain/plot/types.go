package plot

import "fmt"

// PrimitiveKind tags the geometric shape resolved for one data row
type PrimitiveKind string

const (
	KindPoint   PrimitiveKind = "point"
	KindEllipse PrimitiveKind = "ellipse"
)

// Primitive is a plot-ready shape in data coordinates. Constructed
// fresh on every plot-generation request and never mutated.
type Primitive struct {
	Kind PrimitiveKind `json:"kind"`
	X    float64       `json:"x"` // point position or ellipse center
	Y    float64       `json:"y"`
	RX   float64       `json:"rx,omitempty"` // ellipse semi-axis radii, zero for points
	RY   float64       `json:"ry,omitempty"`
}

// NewPoint creates a point primitive
func NewPoint(x, y float64) Primitive {
	return Primitive{Kind: KindPoint, X: x, Y: y}
}

// NewEllipse creates an ellipse primitive centered at (cx, cy).
// Radii must be non-negative; a zero radius on one axis degrades the
// shape to a line segment when drawn.
func NewEllipse(cx, cy, rx, ry float64) Primitive {
	return Primitive{Kind: KindEllipse, X: cx, Y: cy, RX: rx, RY: ry}
}

// String returns a compact representation for logging
func (p Primitive) String() string {
	if p.Kind == KindPoint {
		return fmt.Sprintf("point(%g, %g)", p.X, p.Y)
	}
	return fmt.Sprintf("ellipse(%g±%g, %g±%g)", p.X, p.RX, p.Y, p.RY)
}

// Series pairs one resolved row with its category and legend color
type Series struct {
	Category  string    `json:"category"`
	Color     string    `json:"color"` // hex, e.g. "#4a90d9"
	Primitive Primitive `json:"primitive"`
}
