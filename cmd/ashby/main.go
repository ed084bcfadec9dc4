package main

import (
	"log"
	"net/http"

	"ashby/adapters/excel"
	"ashby/adapters/svg"
	"ashby/app"
	"ashby/internal/config"
	"ashby/ports"
	"ashby/ui"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	plots := app.NewPlotService()

	// Optional table preload so the dropdowns are populated on first visit
	if cfg.Paths.DataFile != "" {
		t, err := excel.NewDataReader(cfg.Paths.DataFile).ReadData()
		if err != nil {
			log.Fatalf("Failed to preload %s: %v", cfg.Paths.DataFile, err)
		}
		if _, err := plots.LoadTable(cfg.Paths.DataFile, t); err != nil {
			log.Fatalf("Failed to install preloaded table: %v", err)
		}
	}

	rendererConfig := svg.DefaultConfig()
	rendererConfig.Width = cfg.Plot.Width
	rendererConfig.Height = cfg.Plot.Height
	renderer := svg.NewRenderer(rendererConfig)

	loaderFor := func(path string) ports.TableLoader {
		return excel.NewDataReader(path)
	}

	application, err := ui.NewApp(plots, renderer, loaderFor, cfg.Plot)
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	log.Printf("[Server] Ashby plot generator listening on :%s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, application.Router()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
