package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	APIKey       string        `env:"BANNERBEAR_API_KEY"`
	BaseURL      string        `env:"BANNERBEAR_BASE_URL" envDefault:"https://api.bannerbear.com/v2"`
	PollInterval time.Duration `env:"BANNERGEN_POLL_INTERVAL" envDefault:"2s"`
	MaxAttempts  int           `env:"BANNERGEN_MAX_ATTEMPTS" envDefault:"30"`
	HTTPTimeout  time.Duration `env:"BANNERGEN_HTTP_TIMEOUT" envDefault:"60s"`
	OutputDir    string        `env:"BANNERGEN_OUTPUT_DIR" envDefault:"."`
	ReportFile   string        `env:"BANNERGEN_REPORT_FILE" envDefault:"generated_images_urls.txt"`
	ManifestFile string        `env:"BANNERGEN_MANIFEST_FILE" envDefault:"generated_images.json"`
	LogLevel     string        `env:"BANNERGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"BANNERGEN_LOG_FORMAT" envDefault:"pretty"`
}

// Load reads envFile (if it exists) into the process environment and then
// parses the environment. Variables already set take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading env file %q: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return &cfg, nil
}

// Validate reports the first setting that would make a run impossible.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("BANNERBEAR_API_KEY must be set")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.ReportFile == "" {
		return fmt.Errorf("report file name must not be empty")
	}
	switch c.LogFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown log format %q (want pretty or json)", c.LogFormat)
	}
	return nil
}
