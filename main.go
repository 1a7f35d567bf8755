package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/quizforge/crop-tool-go/app"
	"github.com/quizforge/crop-tool-go/config"
	"github.com/quizforge/crop-tool-go/debug"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	// Base config from defaults, overridden by the file when present.
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	// Set up logger
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", slog.String("path", *cfgPath), slog.String("err", err.Error()))
	}

	if cfg.Debug {
		debug.StartHeapLogger(2*time.Second, logger)
		debug.StartMemLogger(2*time.Second, logger)
	}

	application := app.NewApp("Crop Tool", cfg.ViewWidth, cfg.ViewHeight, cfg, logger, *cfgPath)
	application.Start()
}
