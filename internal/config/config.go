package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"radar/internal/similarity"
)

// TaxonomyConfig points at an optional YAML taxonomy replacing the built-in one.
type TaxonomyConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ScoringConfig holds the score banding thresholds.
type ScoringConfig struct {
	Bands similarity.Thresholds `yaml:"bands"`
}

// SummarizerConfig selects and configures the job highlight summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type" validate:"oneof=frequency none"`
	MaxSentences int    `yaml:"max_sentences" validate:"gte=0,lte=50"`
}

// LogConfig configures slog output.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
	File  string `yaml:"file,omitempty"`
}

// ExportConfig configures where reports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Taxonomy   TaxonomyConfig   `yaml:"taxonomy"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Log        LogConfig        `yaml:"log"`
	Export     ExportConfig     `yaml:"export"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("config from environment: %w", err)
			}
			return cfg, nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/radar/config.yaml.
// If neither exists, it writes defaults to ~/.config/radar/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("config from environment: %w", err)
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks field constraints.
func (c *AppConfig) Validate() error {
	return validator.New().Struct(c)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "radar", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Scoring:    ScoringConfig{Bands: similarity.DefaultThresholds()},
		Summarizer: SummarizerConfig{Type: "frequency", MaxSentences: 3},
		Log:        LogConfig{Level: "info"},
		Export:     ExportConfig{Dir: "."},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "frequency"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "."
	}
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("RADAR_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("RADAR_TAXONOMY"); v != "" {
		cfg.Taxonomy.Path = v
	}
}
