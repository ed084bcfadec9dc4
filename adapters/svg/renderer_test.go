package svg

import (
	"bytes"
	"strings"
	"testing"

	"ashby/adapters/tabular"
	"ashby/domain/plot"
)

func testSeries() []plot.Series {
	return []plot.Series{
		{Category: "Foams", Color: "#aa3311", Primitive: plot.NewEllipse(30, 0.01, 20, 0.005)},
		{Category: "Metals", Color: "#1133aa", Primitive: plot.NewPoint(7800, 200)},
		{Category: "Foams", Color: "#aa3311", Primitive: plot.NewEllipse(50, 0.02, 10, 0)},
	}
}

func renderToString(t *testing.T, series []plot.Series, req plot.Request) string {
	t.Helper()
	legend := tabular.AssignColors([]string{"Foams", "Metals"})
	var buf bytes.Buffer
	if err := NewRenderer(DefaultConfig()).Render(&buf, series, req, legend); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return buf.String()
}

func TestRenderEmitsShapes(t *testing.T) {
	out := renderToString(t, testSeries(), plot.Request{
		XProperty: "Density", YProperty: "Modulus",
		XUnit: "kg/m^3", YUnit: "GPa",
		LogScale: true,
	})

	if !strings.Contains(out, "<ellipse") {
		t.Error("expected an ellipse element for ranged rows")
	}
	if !strings.Contains(out, "<circle") {
		t.Error("expected a circle element for point rows")
	}
	if !strings.Contains(out, "<line") {
		t.Error("expected a line element for a zero-height ellipse")
	}
	if !strings.Contains(out, "Density, kg/m^3") || !strings.Contains(out, "Modulus, GPa") {
		t.Error("axis labels should carry the unit suffix")
	}
	// Legend entries for both categories.
	if !strings.Contains(out, ">Foams</text>") || !strings.Contains(out, ">Metals</text>") {
		t.Error("legend should name every category")
	}
}

func TestRenderLogModeDropsNonPositive(t *testing.T) {
	series := []plot.Series{
		{Category: "Foams", Color: "#aa3311", Primitive: plot.NewPoint(-5, 10)},
	}
	out := renderToString(t, series, plot.Request{
		XProperty: "Density", YProperty: "Modulus", LogScale: true,
	})

	if strings.Contains(out, "<circle") {
		t.Error("non-positive coordinates must not be drawn on log axes")
	}
}

func TestRenderGuideline(t *testing.T) {
	out := renderToString(t, testSeries(), plot.Request{
		XProperty: "Density", YProperty: "Modulus",
		LogScale: true,
		Guideline: &plot.Guideline{
			Power: 2, Intercept: 1e-6, XMin: 10, XMax: 1000, Label: "E^2/rho",
		},
	})

	if !strings.Contains(out, "<polyline") {
		t.Error("expected a polyline for the guideline")
	}
	if !strings.Contains(out, "E^2/rho") {
		t.Error("expected the guideline annotation text")
	}
}

func TestRenderHonorsExplicitLimits(t *testing.T) {
	req := plot.Request{
		XProperty: "Density", YProperty: "Modulus",
		Limits: &plot.Limits{XMin: 0, XMax: 100, YMin: 0, YMax: 1},
	}
	out := renderToString(t, testSeries(), req)
	if !strings.Contains(out, "<svg") {
		t.Fatal("expected svg output")
	}
}

func TestRenderEmptySeries(t *testing.T) {
	out := renderToString(t, nil, plot.Request{
		XProperty: "Density", YProperty: "Modulus", LogScale: true,
	})
	if !strings.Contains(out, "</svg>") {
		t.Error("empty dataset should still produce a complete document")
	}
}
