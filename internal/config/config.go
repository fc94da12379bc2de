package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultDataDir = "data"

	EnvDevelopment = "development"
	EnvProduction  = "production"

	dataDirEnv = "SITELINK_DATA_DIR"
)

// Config holds the runtime settings shared by every sitelink binary
type Config struct {
	DataDir     string `env:"SITELINK_DATA_DIR" envDefault:"data"`
	Environment string `env:"SITELINK_ENV" envDefault:"development"`

	HTTPAddr        string        `env:"SITELINK_HTTP_ADDR" envDefault:":8080"`
	RateLimit       float64       `env:"SITELINK_RATE_LIMIT" envDefault:"5"`
	RateBurst       int           `env:"SITELINK_RATE_BURST" envDefault:"10"`
	ShutdownTimeout time.Duration `env:"SITELINK_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"SITELINK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SITELINK_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"SITELINK_LOG_FILE"`
}

// DataDir returns the content directory from SITELINK_DATA_DIR,
// falling back to DefaultDataDir.
func DataDir() string {
	if dir := os.Getenv(dataDirEnv); dir != "" {
		return dir
	}
	return DefaultDataDir
}

// Load reads optional dotenv files (".env" when none are given) and parses
// the process environment. Missing dotenv files are ignored.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to load %s: %w", file, err)
		}
	}
	return parse(env.Options{})
}

// FromMap parses settings from environ instead of the process environment
func FromMap(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("config: SITELINK_ENV must be %s or %s, got %q", EnvDevelopment, EnvProduction, c.Environment)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: SITELINK_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}

	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return errors.New("config: rate limit and burst must be positive")
	}
	if c.DataDir == "" {
		return errors.New("config: SITELINK_DATA_DIR must not be empty")
	}
	return nil
}

// IsDevelopment reports whether editing endpoints may be exposed
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// LogFilePath returns where the TUI writes its logs
func (c *Config) LogFilePath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(os.TempDir(), "sitelink.log")
}
