package main

import (
	"flag"
	"log/slog"
	"os"

	"TacticalBoard/internal/config"
	"TacticalBoard/internal/state"
	"TacticalBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", slog.String("path", *configPath), slog.Any("err", err))
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
		if err := cfg.Validate(); err != nil {
			slog.Error("bad -log-level", slog.Any("err", err))
			os.Exit(1)
		}
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		slog.Error("bad log level", slog.Any("err", err))
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	state.SetLogger(logger)

	logger.Info("starting tactical board",
		slog.String("config", *configPath),
		slog.Int("markers", len(cfg.Markers)),
	)
	if err := ui.RunApp(cfg); err != nil {
		logger.Error("board failed to start", slog.Any("err", err))
		os.Exit(1)
	}
}
