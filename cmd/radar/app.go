package main

import (
	"fmt"
	"log/slog"

	"radar/internal/config"
	"radar/internal/domain"
	"radar/internal/logging"
	"radar/internal/service"
	"radar/internal/similarity"
	"radar/internal/skills"
	"radar/internal/summarizer"
)

type app struct {
	cfg        *config.AppConfig
	svc        *service.AnalysisService
	summarizer domain.Summarizer
}

func loadConfig(cfgPath string) (*config.AppConfig, error) {
	if cfgPath == "" {
		cfg, path, err := config.LoadDefault()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		slog.Debug("config loaded", "path", path)
		return cfg, nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// buildApp assembles components from cfg.
func buildApp(cfg *config.AppConfig) (*app, error) {
	tax := skills.DefaultTaxonomy()
	if cfg.Taxonomy.Path != "" {
		var err error
		if tax, err = skills.LoadTaxonomy(cfg.Taxonomy.Path); err != nil {
			return nil, err
		}
		slog.Info("custom taxonomy loaded", "path", cfg.Taxonomy.Path, "categories", len(tax.Categories))
	}

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer()
	case "none":
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	svc := service.NewAnalysisService(similarity.NewScorer(), skills.NewMatcher(tax), cfg.Scoring.Bands)
	return &app{cfg: cfg, svc: svc, summarizer: sum}, nil
}

func logLevel(cfg *config.AppConfig) slog.Level {
	return logging.ParseLevel(cfg.Log.Level)
}
