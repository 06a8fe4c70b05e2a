package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/mathlab/internal/practice"
	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup Load performs at an empty temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFile, "")
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, practice.DefaultSettings(), cfg.Exercises)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.Path)
}

func TestLoad_ExplicitFileMergesOverDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
seed: 42
log:
  level: debug
exercises:
  arithmetic:
    mode: add
    count: 5
    max: 10
  dice:
    dice: 3
    throws: 6
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, problemgen.ArithmeticSettings{Mode: problemgen.ModeAdd, Count: 5, Max: 10}, cfg.Exercises.Arithmetic)
	assert.Equal(t, problemgen.DiceSettings{Dice: 3, Throws: 6}, cfg.Exercises.Dice)
	// Untouched sections keep their defaults.
	assert.Equal(t, practice.DefaultSettings().Clock, cfg.Exercises.Clock)
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_XDGFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "mathlab", "config.yaml"), "exercises:\n  clock:\n    count: 7\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Exercises.Clock.Count)
}

func TestLoad_EnvConfigPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.yaml")
	writeFile(t, path, "seed: 9\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.yaml")
	writeFile(t, path, "seed: 1\nlog:\n  level: warn\n")
	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFile, "/tmp/mathlab.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/tmp/mathlab.log", cfg.Log.File)
}

func TestLoad_BadSeed(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSeed, "lots")
	_, err := Load("")
	assert.ErrorContains(t, err, EnvSeed)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "exercises: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero count", func(c *Config) { c.Exercises.Arithmetic.Count = 0 }, false},
		{"count too large", func(c *Config) { c.Exercises.Comparison.Count = 1000 }, false},
		{"unknown mode", func(c *Config) { c.Exercises.Arithmetic.Mode = "times" }, false},
		{"multiplication div", func(c *Config) { c.Exercises.Multiplication.Mode = problemgen.ModeDiv }, true},
		{"four dice", func(c *Config) { c.Exercises.Dice.Dice = 4 }, false},
		{"four throws", func(c *Config) { c.Exercises.Dice.Throws = 4 }, false},
		{"word length in bank", func(c *Config) { c.Exercises.WordLab.Letters = 6 }, true},
		{"word length not in bank", func(c *Config) { c.Exercises.WordLab.Letters = 9 }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tc.ok)
			}
		})
	}
}
