package ui

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"ashby/domain/core"
	"ashby/domain/plot"
	"ashby/internal/errors"
)

// indexData feeds the main page template
type indexData struct {
	DatasetName string
	AxisOptions []string
	Categories  []string
	DefaultLog  bool
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		AxisOptions: a.plots.AxisOptions(),
		DefaultLog:  a.defaults.LogScale,
	}
	if dataset, ok := a.plots.Dataset(); ok {
		data.DatasetName = dataset.Name
		data.Categories = dataset.Colors.Categories()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("[UI] template render failed: %v", err)
	}
}

// handleLoad loads a material properties file and rebuilds the
// per-load classification and palette
func (a *App) handleLoad(w http.ResponseWriter, r *http.Request) {
	path := r.FormValue("path")
	if path == "" {
		writeJSONError(w, http.StatusBadRequest, "path is required")
		return
	}

	t, err := a.loaderFor(path).ReadData()
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsLoadError(err) {
			status = http.StatusUnprocessableEntity
		}
		writeJSONError(w, status, errors.LoadFailed(err, path).Error())
		return
	}

	dataset, err := a.plots.LoadTable(path, t)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dataset_id":   dataset.ID.String(),
		"name":         dataset.Name,
		"rows":         dataset.Table.RowCount(),
		"axis_options": dataset.Schema.AxisOptions,
		"categories":   dataset.Colors.Categories(),
	})
}

// handleAxisOptions returns the selectable axis properties for the
// dropdowns; recomputed on every load server-side
func (a *App) handleAxisOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"axis_options": a.plots.AxisOptions(),
	})
}

// handlePlot builds the plot dataset for the chosen axes and streams
// the rendered chart
func (a *App) handlePlot(w http.ResponseWriter, r *http.Request) {
	req, err := a.parsePlotRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	series, err := a.plots.Build(req.XProperty, req.YProperty)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsRequestError(err) {
			status = http.StatusBadRequest
		}
		writeJSONError(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := a.renderer.Render(w, series, req, a.plots.Legend()); err != nil {
		log.Printf("[UI] render failed: %v", err)
	}
}

// parsePlotRequest maps query parameters onto a plot request. Unit
// strings pass through unchanged as label suffixes.
func (a *App) parsePlotRequest(r *http.Request) (plot.Request, error) {
	q := r.URL.Query()

	req := plot.Request{
		XProperty: q.Get("x"),
		YProperty: q.Get("y"),
		XUnit:     q.Get("xunit"),
		YUnit:     q.Get("yunit"),
		LogScale:  a.defaults.LogScale,
	}
	if req.XProperty == "" || req.YProperty == "" {
		return plot.Request{}, errors.New("BAD_REQUEST", "x and y properties are required")
	}

	if logParam := q.Get("log"); logParam != "" {
		logScale, err := strconv.ParseBool(logParam)
		if err != nil {
			return plot.Request{}, errors.New("BAD_REQUEST", "log must be a boolean")
		}
		req.LogScale = logScale
	}

	limits, err := parseLimits(q)
	if err != nil {
		return plot.Request{}, err
	}
	req.Limits = limits

	guideline, err := parseGuideline(q)
	if err != nil {
		return plot.Request{}, err
	}
	req.Guideline = guideline

	return req, nil
}

func parseLimits(q map[string][]string) (*plot.Limits, error) {
	keys := []string{"xmin", "xmax", "ymin", "ymax"}
	values := make([]float64, len(keys))
	present := 0
	for i, key := range keys {
		raw := first(q, key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("BAD_REQUEST", key+" must be numeric")
		}
		values[i] = v
		present++
	}
	switch present {
	case 0:
		return nil, nil
	case len(keys):
		return &plot.Limits{XMin: values[0], XMax: values[1], YMin: values[2], YMax: values[3]}, nil
	default:
		return nil, errors.New("BAD_REQUEST", "axis limits require all of xmin, xmax, ymin, ymax")
	}
}

func parseGuideline(q map[string][]string) (*plot.Guideline, error) {
	if first(q, "gpower") == "" {
		return nil, nil
	}
	numeric := map[string]float64{}
	for _, key := range []string{"gpower", "gintercept", "gxmin", "gxmax"} {
		raw := first(q, key)
		if raw == "" {
			return nil, errors.New("BAD_REQUEST", "guideline requires gpower, gintercept, gxmin, gxmax")
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("BAD_REQUEST", key+" must be numeric")
		}
		numeric[key] = v
	}
	return &plot.Guideline{
		Power:     numeric["gpower"],
		Intercept: numeric["gintercept"],
		XMin:      numeric["gxmin"],
		XMax:      numeric["gxmax"],
		Label:     first(q, "glabel"),
	}, nil
}

func first(q map[string][]string, key string) string {
	if vs := q[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[UI] response encode failed: %v", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
