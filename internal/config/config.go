// Package config loads the clash configuration: a YAML file under the XDG
// config directory, overlaid with environment variables. A missing file is
// not an error; the defaults point at a local arena service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"codeclash/internal/arena"
)

const (
	// DefaultServerURL is where the arena service listens when run locally.
	DefaultServerURL = "http://localhost:5000"

	envConfigPath = "CODECLASH_CONFIG"
	envServerURL  = "CODECLASH_SERVER_URL"
	envUsername   = "CODECLASH_USERNAME"
	envLanguage   = "CODECLASH_LANGUAGE"
)

// Config holds all clash configuration.
type Config struct {
	// Arena service connection
	Server ServerConfig `yaml:"server"`

	// Prefills for the submission form and one-shot commands
	Defaults DefaultsConfig `yaml:"defaults"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// ServerConfig locates the arena service.
type ServerConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
	// TimeoutSeconds bounds one-shot CLI calls. Zero means no timeout,
	// which is also what the interactive board uses regardless.
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"min=0"`
}

// DefaultsConfig prefills the submission form.
type DefaultsConfig struct {
	Username string `yaml:"username"`
	Language string `yaml:"language" validate:"omitempty,clashlang"`
}

// LogConfig configures file logging.
type LogConfig struct {
	Dir   string `yaml:"dir"`
	Debug bool   `yaml:"debug"`
}

// Timeout converts the configured seconds into a duration; zero disables it.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        DefaultServerURL,
			TimeoutSeconds: 0,
		},
		Defaults: DefaultsConfig{
			Language: string(arena.LangPython),
		},
	}
}

// Load resolves the config path (env var, then XDG, then ~/.config), reads
// it if present, applies environment overrides, and validates the result.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit file path, for the --config flag.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the config file location without reading it.
func Path() string {
	// 1. Explicit path via environment variable
	if path := os.Getenv(envConfigPath); path != "" {
		return path
	}

	// 2. XDG_CONFIG_HOME (XDG Base Directory Specification)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "codeclash", "config.yaml")
	}

	// 3. Default to ~/.config/codeclash/config.yaml
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "codeclash", "config.yaml")
}

// LogDir returns the configured log directory, falling back to the XDG
// state directory or ~/.local/state/codeclash.
func (c *Config) LogDir() string {
	if c.Log.Dir != "" {
		return expandTilde(c.Log.Dir)
	}
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "codeclash", "logs")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "codeclash", "logs")
}

// Language returns the default language as a typed value. Anything
// unparseable falls back to python rather than failing the session.
func (c *Config) Language() arena.Language {
	if l, err := arena.ParseLanguage(c.Defaults.Language); err == nil {
		return l
	}
	return arena.LangPython
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv(envServerURL); url != "" {
		c.Server.BaseURL = url
	}
	if user := os.Getenv(envUsername); user != "" {
		c.Defaults.Username = user
	}
	if lang := os.Getenv(envLanguage); lang != "" {
		c.Defaults.Language = lang
	}
}

func (c *Config) validate() error {
	validate := validator.New()

	validate.RegisterValidation("clashlang", func(fl validator.FieldLevel) bool {
		_, err := arena.ParseLanguage(fl.Field().String())
		return err == nil
	})

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// expandTilde expands a leading ~/ to the user's home directory.
func expandTilde(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
