package ui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ashby/app"
	"ashby/internal/config"
	"ashby/internal/errors"
	"ashby/ports"
)

//go:embed templates/*
var embeddedFiles embed.FS

// LoaderFactory builds a table loader for a user-supplied path
type LoaderFactory func(path string) ports.TableLoader

// App represents the UI application
type App struct {
	router    *chi.Mux
	plots     *app.PlotService
	renderer  ports.Renderer
	loaderFor LoaderFactory
	defaults  config.PlotConfig
	templates *template.Template
}

// NewApp creates a new UI application
func NewApp(plots *app.PlotService, renderer ports.Renderer, loaderFor LoaderFactory, defaults config.PlotConfig) (*App, error) {
	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	a := &App{
		router:    chi.NewRouter(),
		plots:     plots,
		renderer:  renderer,
		loaderFor: loaderFor,
		defaults:  defaults,
		templates: templates,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures all application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/load", a.handleLoad)
	a.router.Get("/api/axes", a.handleAxisOptions)
	a.router.Get("/plot.svg", a.handlePlot)
}

// Router returns the chi router for serving
func (a *App) Router() http.Handler {
	return a.router
}
