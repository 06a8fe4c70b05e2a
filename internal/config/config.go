// Package config loads mathlab settings from defaults, a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/practice"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig   = "MATHLAB_CONFIG"
	EnvSeed     = "MATHLAB_SEED"
	EnvLogLevel = "MATHLAB_LOG_LEVEL"
	EnvLogFile  = "MATHLAB_LOG_FILE"
)

var validate = validator.New()

// Log configures diagnostic logging.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	// File receives log output. Empty means the command's default sink.
	File string `yaml:"file"`
}

// Config is the resolved mathlab configuration.
type Config struct {
	// Seed makes exercise generation reproducible. Zero picks a random seed.
	Seed      uint64            `yaml:"seed"`
	Log       Log               `yaml:"log"`
	Exercises practice.Settings `yaml:"exercises"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Log:       Log{Level: "info"},
		Exercises: practice.DefaultSettings(),
	}
}

// Load resolves the configuration. The file is path when set, else
// $MATHLAB_CONFIG, else $XDG_CONFIG_HOME/mathlab/config.yaml when it exists.
// An explicitly named file must exist. Environment variables override the
// file and the result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		explicit = false
		path = DefaultPath()
	}

	if path != "" {
		found, err := loadFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
		if !found && explicit {
			return nil, fmt.Errorf("load config file: %s does not exist", path)
		}
		if found {
			cfg.Path = path
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/mathlab/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset. It returns "" when no home
// directory can be found.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mathlab", "config.yaml")
}

// loadFile merges the YAML at path over cfg. found is false when the file
// does not exist.
func loadFile(path string, cfg *Config) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return true, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// Validate checks every setting against its allowed range. Word lab letter
// counts must match a length present in the word bank.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	bank, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	lengths := bank.WordLengths()
	if !slices.Contains(lengths, c.Exercises.WordLab.Letters) {
		return fmt.Errorf("word_lab.letters %d: want one of %v", c.Exercises.WordLab.Letters, lengths)
	}
	return nil
}
