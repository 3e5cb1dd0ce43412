package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"hangman/internal/domain/errs"
)

type Config struct {
	APIURL   string        `yaml:"api-url" env:"HANGMAN_API_URL" env-default:"http://localhost:8000" env-description:"hangman service base URL"`
	LogLevel string        `yaml:"log-level" env:"HANGMAN_LOG_LEVEL" env-default:"error" env-description:"log level (debug, info, warn, error)"`
	Timeout  time.Duration `yaml:"timeout" env:"HANGMAN_TIMEOUT" env-default:"0s" env-description:"per-request timeout, 0 for none"`
}

// Load reads the YAML file at path when it exists, then the environment.
// A .env file in the working directory is loaded first if present. The
// result is not validated so callers can apply overrides first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, conf); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return conf, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return conf, nil
}

// Validate checks the API URL is an absolute http(s) address and the
// timeout is not negative.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errs.ErrNoAPIURL
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api url %q: missing host", c.APIURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s", c.Timeout)
	}
	return nil
}

// Usage describes the environment variables Load understands.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
