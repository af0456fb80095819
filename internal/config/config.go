// Package config collects the settings of a run from the environment,
// an optional .env file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/naka-gawa/readme-card/internal/domain"
	"github.com/naka-gawa/readme-card/internal/gateway"
)

const (
	// DefaultAPIBaseURL is the REST endpoint of github.com.
	DefaultAPIBaseURL = "https://api.github.com/"
	// DefaultBackgroundPath selects the background compiled into the binary.
	DefaultBackgroundPath = ""
	// DefaultOutputPath is where the rendered PNG is written.
	DefaultOutputPath = "/tmp/readme.png"
	// DefaultConcurrency is the number of cards rendered at the same time.
	DefaultConcurrency = 4
)

// Config holds everything a single run needs. It is populated once at startup.
type Config struct {
	Token      string
	Username   string
	APIBaseURL string
	UserAgent  string
	// BackgroundPath is empty for the built-in background.
	BackgroundPath string
	OutputPath     string
	Concurrency    int
	AllCards       bool
}

// Load reads .env from the working directory, if present, and then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to load .env: %w", domain.ErrConfig, err)
	}
	apiBase := os.Getenv("GITHUB_API_BASE")
	if apiBase == "" {
		apiBase = DefaultAPIBaseURL
	}
	userAgent := os.Getenv("GITHUB_USER_AGENT")
	if userAgent == "" {
		userAgent = gateway.DefaultUserAgent
	}
	return &Config{
		Token:          os.Getenv("GITHUB_USER_TOKEN"),
		Username:       os.Getenv("USERNAME"),
		APIBaseURL:     apiBase,
		UserAgent:      userAgent,
		BackgroundPath: DefaultBackgroundPath,
		OutputPath:     DefaultOutputPath,
		Concurrency:    DefaultConcurrency,
	}, nil
}

// Validate reports missing credentials or unusable settings.
func (c *Config) Validate() error {
	switch {
	case c.Token == "":
		return fmt.Errorf("%w: GITHUB_USER_TOKEN environment variable is not set", domain.ErrConfig)
	case c.Username == "":
		return fmt.Errorf("%w: USERNAME environment variable is not set", domain.ErrConfig)
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", domain.ErrConfig, c.Concurrency)
	case c.OutputPath == "":
		return fmt.Errorf("%w: output path is empty", domain.ErrConfig)
	}
	return nil
}

// GatewayOptions returns the settings for the GitHub gateway.
func (c *Config) GatewayOptions() gateway.Options {
	return gateway.Options{
		Token:     c.Token,
		BaseURL:   c.APIBaseURL,
		UserAgent: c.UserAgent,
	}
}
