package plot

// Limits are explicit axis bounds in data coordinates
type Limits struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// Guideline describes a material-index reference line. On log-log
// axes it is the power law y = Intercept * x^Power; on linear axes it
// is the line y = Power*x + Intercept, matching how selection
// guidelines are read off each scale.
type Guideline struct {
	Power     float64 `json:"power"`
	Intercept float64 `json:"intercept"`
	XMin      float64 `json:"x_min"`
	XMax      float64 `json:"x_max"`
	Label     string  `json:"label,omitempty"`
}

// Request selects the axes and presentation for one plot generation.
// Unit strings are opaque display labels passed through to the axis
// labels; the pipeline never interprets them.
type Request struct {
	XProperty string `json:"x_property"`
	YProperty string `json:"y_property"`
	XUnit     string `json:"x_unit,omitempty"`
	YUnit     string `json:"y_unit,omitempty"`

	LogScale  bool       `json:"log_scale"`
	Limits    *Limits    `json:"limits,omitempty"`    // nil: derive from data
	Guideline *Guideline `json:"guideline,omitempty"` // nil: no reference line
}

// XLabel returns the x-axis display label, unit-suffixed when a unit
// was supplied
func (r Request) XLabel() string {
	return axisLabel(r.XProperty, r.XUnit)
}

// YLabel returns the y-axis display label
func (r Request) YLabel() string {
	return axisLabel(r.YProperty, r.YUnit)
}

func axisLabel(property, unit string) string {
	if unit == "" {
		return property
	}
	return property + ", " + unit
}
