package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar/internal/similarity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("RADAR_LOG_LEVEL", "")
	t.Setenv("RADAR_TAXONOMY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, similarity.Thresholds{High: 70, Medium: 40}, cfg.Scoring.Bands)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	t.Setenv("RADAR_LOG_LEVEL", "")
	t.Setenv("RADAR_TAXONOMY", "")
	cfg, err := Load(writeConfig(t, "taxonomy:\n  path: tax.yaml\nlog:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "tax.yaml", cfg.Taxonomy.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 70.0, cfg.Scoring.Bands.High)
	assert.Equal(t, "frequency", cfg.Summarizer.Type)
	assert.Equal(t, 3, cfg.Summarizer.MaxSentences)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RADAR_LOG_LEVEL", "warn")
	t.Setenv("RADAR_TAXONOMY", "/etc/radar/taxonomy.yaml")
	cfg, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/etc/radar/taxonomy.yaml", cfg.Taxonomy.Path)
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("RADAR_LOG_LEVEL", "")
	t.Setenv("RADAR_TAXONOMY", "")
	tests := []struct {
		name    string
		content string
	}{
		{"high below medium", "scoring:\n  bands:\n    high: 30\n    medium: 40\n"},
		{"high above 100", "scoring:\n  bands:\n    high: 120\n    medium: 40\n"},
		{"negative medium", "scoring:\n  bands:\n    high: 70\n    medium: -1\n"},
		{"unknown summarizer", "summarizer:\n  type: llm\n"},
		{"unknown log level", "log:\n  level: chatty\n"},
		{"malformed yaml", "scoring: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("RADAR_LOG_LEVEL", "")
	t.Setenv("RADAR_TAXONOMY", "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Scoring.Bands = similarity.Thresholds{High: 80, Medium: 50}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadDefaultWritesUserConfig(t *testing.T) {
	t.Setenv("RADAR_LOG_LEVEL", "")
	t.Setenv("RADAR_TAXONOMY", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "radar", "config.yaml"), path)
	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, path)
}

func TestEnvLogLevelValidatedOnEveryPath(t *testing.T) {
	t.Setenv("RADAR_LOG_LEVEL", "verbose")
	t.Setenv("RADAR_TAXONOMY", "")

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Level")
	})
	t.Run("existing file", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log:\n  level: debug\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Level")
	})
	t.Run("defaults written", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		chdir(t, t.TempDir())
		_, _, err := LoadDefault()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Level")
	})
}
