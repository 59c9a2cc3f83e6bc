package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pizza/internal/pkg/errs"
)

const (
	defaultHTTPPort             = "8080"
	defaultAppEnv               = "development"
	defaultSessionIdleTimeout   = 30 * time.Minute
	defaultSessionSweepSchedule = "0 * * * * *"
)

type Config struct {
	HTTPPort             string
	AppEnv               string
	SessionIdleTimeout   time.Duration
	SessionSweepSchedule string
}

// LoadConfig reads the configuration from environment variables, falling
// back to defaults for unset ones.
func LoadConfig() (Config, error) {
	cfg := Config{
		HTTPPort:             envOr("HTTP_PORT", defaultHTTPPort),
		AppEnv:               envOr("APP_ENV", defaultAppEnv),
		SessionIdleTimeout:   defaultSessionIdleTimeout,
		SessionSweepSchedule: envOr("SESSION_SWEEP_SCHEDULE", defaultSessionSweepSchedule),
	}

	var timeoutErr error
	if raw, ok := os.LookupEnv("SESSION_IDLE_TIMEOUT"); ok && raw != "" {
		timeout, err := time.ParseDuration(raw)
		switch {
		case err != nil:
			timeoutErr = errs.NewValueIsInvalidErrorWithCause("SESSION_IDLE_TIMEOUT", err)
		case timeout <= 0:
			timeoutErr = errs.NewValueIsOutOfRangeError("SESSION_IDLE_TIMEOUT", raw, "1ns", "max duration")
		default:
			cfg.SessionIdleTimeout = timeout
		}
	}

	if err := errors.Join(timeoutErr, validatePort(cfg.HTTPPort)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validatePort(port string) error {
	var n int
	if _, err := fmt.Sscanf(port, "%d", &n); err != nil || n < 1 || n > 65535 || fmt.Sprint(n) != port {
		return errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", fmt.Errorf("%q is not a TCP port", port))
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
