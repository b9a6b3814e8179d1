// Package config loads voltdesk's runtime configuration from the
// environment. A .env file in the working directory is honored when
// present; real environment variables win over it. The auth token comes
// from the PIN/login subsystem outside this tool — voltdesk only
// carries it.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIURL  = "VOLTDESK_API_URL"
	EnvToken   = "VOLTDESK_TOKEN"
	EnvTimeout = "VOLTDESK_TIMEOUT_SECONDS"
)

// ErrMissingAPIURL is returned when no backend URL is configured.
var ErrMissingAPIURL = errors.New("config: " + EnvAPIURL + " is not set")

// Config is the resolved runtime configuration.
type Config struct {
	APIURL  string
	Token   string
	Timeout time.Duration
}

// Load reads the .env file (if any) and the environment. The API URL is
// required; the token may be empty here and supplied later via flag.
func Load() (Config, error) {
	// Missing .env is fine; env vars alone are a valid setup.
	_ = godotenv.Load()

	cfg := Config{
		APIURL:  os.Getenv(EnvAPIURL),
		Token:   os.Getenv(EnvToken),
		Timeout: 30 * time.Second,
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, errors.New("config: " + EnvTimeout + " must be a positive integer")
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	if cfg.APIURL == "" {
		return Config{}, ErrMissingAPIURL
	}
	return cfg, nil
}
