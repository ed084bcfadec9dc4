// Command ashby-export renders material property charts headlessly.
// It loads one table, resolves the chosen axis pair (or, with -all,
// every numeric axis pair) and writes SVG figures to disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ashby/adapters/excel"
	"ashby/adapters/svg"
	"ashby/app"
	"ashby/domain/plot"
	"ashby/internal/config"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// exportConcurrency caps parallel figure writes in -all mode
const exportConcurrency = 4

func main() {
	var (
		file     = flag.String("file", "", "material properties table (.xlsx or .csv)")
		xProp    = flag.String("x", "", "x-axis property")
		yProp    = flag.String("y", "", "y-axis property")
		xUnit    = flag.String("xunit", "", "x-axis unit label")
		yUnit    = flag.String("yunit", "", "y-axis unit label")
		logScale = flag.Bool("log", true, "log-log axes")
		all      = flag.Bool("all", false, "export every axis pair instead of one")
		outDir   = flag.String("out", "", "output directory (default: configured figures dir)")
		width    = flag.Int("width", 0, "figure width in px (default: configured)")
		height   = flag.Int("height", 0, "figure height in px (default: configured)")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *file == "" {
		log.Fatal("-file is required")
	}
	if !*all && (*xProp == "" || *yProp == "") {
		log.Fatal("either -all or both -x and -y are required")
	}

	t, err := excel.NewDataReader(*file).ReadData()
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *file, err)
	}

	plots := app.NewPlotService()
	dataset, err := plots.LoadTable(filepath.Base(*file), t)
	if err != nil {
		log.Fatalf("Failed to install table: %v", err)
	}

	rendererConfig := svg.DefaultConfig()
	rendererConfig.Width = cfg.Plot.Width
	rendererConfig.Height = cfg.Plot.Height
	if *width > 0 {
		rendererConfig.Width = *width
	}
	if *height > 0 {
		rendererConfig.Height = *height
	}
	renderer := svg.NewRenderer(rendererConfig)

	dir := cfg.Paths.FiguresDir
	if *outDir != "" {
		dir = *outDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory %s: %v", dir, err)
	}

	if !*all {
		req := plot.Request{
			XProperty: *xProp, YProperty: *yProp,
			XUnit: *xUnit, YUnit: *yUnit,
			LogScale: *logScale,
		}
		if err := export(plots, renderer, dir, req); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	options := dataset.Schema.AxisOptions
	if len(options) < 2 {
		log.Fatalf("Need at least two numeric properties for -all, found %d", len(options))
	}

	var group errgroup.Group
	group.SetLimit(exportConcurrency)
	for i := 0; i < len(options); i++ {
		for j := i + 1; j < len(options); j++ {
			req := plot.Request{
				XProperty: options[i],
				YProperty: options[j],
				LogScale:  *logScale,
			}
			group.Go(func() error {
				return export(plots, renderer, dir, req)
			})
		}
	}
	if err := group.Wait(); err != nil {
		log.Fatalf("Batch export failed: %v", err)
	}
	log.Printf("[Export] %d axis pairs written to %s", len(options)*(len(options)-1)/2, dir)
}

// export builds and writes one figure
func export(plots *app.PlotService, renderer *svg.Renderer, dir string, req plot.Request) error {
	series, err := plots.Build(req.XProperty, req.YProperty)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, figureName(req.XProperty, req.YProperty))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := renderer.Render(f, series, req, plots.Legend()); err != nil {
		return err
	}
	log.Printf("[Export] %s (%d primitives)", path, len(series))
	return nil
}

// figureName builds a filesystem-safe figure file name for an axis pair
func figureName(xProperty, yProperty string) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
				return r
			default:
				return '_'
			}
		}, s)
	}
	return fmt.Sprintf("%s_vs_%s.svg", clean(yProperty), clean(xProperty))
}
