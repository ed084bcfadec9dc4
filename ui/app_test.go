package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ashby/adapters/excel"
	"ashby/adapters/svg"
	"ashby/app"
	"ashby/internal/config"
	"ashby/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *app.PlotService) {
	t.Helper()
	plots := app.NewPlotService()
	loaderFor := func(path string) ports.TableLoader { return excel.NewDataReader(path) }
	a, err := NewApp(plots, svg.NewRenderer(svg.DefaultConfig()), loaderFor, config.PlotConfig{LogScale: true})
	require.NoError(t, err)
	return a, plots
}

func writeMaterialsCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "materials.csv")
	content := "Category,Density low,Density high,Modulus\n" +
		"Foams,10,50,~0.01\n" +
		"Metals,7000,9000,200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndAxisOptions(t *testing.T) {
	a, _ := newTestApp(t)
	path := writeMaterialsCSV(t)

	form := url.Values{"path": {path}}
	req := httptest.NewRequest(http.MethodPost, "/load", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loaded struct {
		AxisOptions []string `json:"axis_options"`
		Categories  []string `json:"categories"`
		Rows        int      `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	assert.Equal(t, []string{"Density", "Modulus"}, loaded.AxisOptions)
	assert.Equal(t, []string{"Foams", "Metals"}, loaded.Categories)
	assert.Equal(t, 2, loaded.Rows)

	rec = httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/axes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Density")
}

func TestPlotEndpoint(t *testing.T) {
	a, plots := newTestApp(t)
	path := writeMaterialsCSV(t)

	tbl, err := excel.NewDataReader(path).ReadData()
	require.NoError(t, err)
	_, err = plots.LoadTable("materials", tbl)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/plot.svg?x=Density&y=Modulus&xunit=kg/m%5E3&yunit=GPa&log=true", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), "Density, kg/m^3")
}

func TestPlotRequiresLoadedDataset(t *testing.T) {
	a, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plot.svg?x=Density&y=Modulus", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no dataset loaded")
}

func TestPlotRejectsUnknownProperty(t *testing.T) {
	a, plots := newTestApp(t)
	tbl, err := excel.NewDataReader(writeMaterialsCSV(t)).ReadData()
	require.NoError(t, err)
	_, err = plots.LoadTable("materials", tbl)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plot.svg?x=Density&y=Bogus", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoadRejectsMissingCategory(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Material,Density\nsteel,7800\n"), 0o644))

	form := url.Values{"path": {path}}
	req := httptest.NewRequest(http.MethodPost, "/load", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestIndexPageRenders(t *testing.T) {
	a, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ashby Plot Generator")
}
