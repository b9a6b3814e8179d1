package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://localhost:8000/api")
	t.Setenv(EnvToken, "tok-123")
	t.Setenv(EnvTimeout, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "http://localhost:8000/api" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Token != "tok-123" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("default Timeout = %v", cfg.Timeout)
	}
}

func TestLoadTimeoutOverride(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://localhost:8000/api")
	t.Setenv(EnvTimeout, "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://localhost:8000/api")

	for _, raw := range []string{"zero", "-1", "0"} {
		t.Setenv(EnvTimeout, raw)
		if _, err := Load(); err == nil {
			t.Errorf("timeout %q should be rejected", raw)
		}
	}
}

func TestLoadRequiresAPIURL(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvToken, "tok")
	t.Setenv(EnvTimeout, "")

	if _, err := Load(); !errors.Is(err, ErrMissingAPIURL) {
		t.Fatalf("err = %v, want ErrMissingAPIURL", err)
	}
}
