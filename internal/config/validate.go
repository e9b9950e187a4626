package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration invariants and returns actionable errors.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	var errs []error
	if strings.TrimSpace(cfg.Nuke.Host) == "" {
		errs = append(errs, errors.New("nuke.host: must not be empty"))
	}
	if cfg.Nuke.Port < 1 || cfg.Nuke.Port > 65535 {
		errs = append(errs, fmt.Errorf("nuke.port: must be in 1-65535, got %d", cfg.Nuke.Port))
	}
	if _, err := parseTimeout("nuke.dial_timeout", cfg.Nuke.DialTimeout); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseTimeout("nuke.reply_timeout", cfg.Nuke.ReplyTimeout); err != nil {
		errs = append(errs, err)
	}
	if err := validateLogLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateLogLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("log.level: unknown level %q", level)
	}
}
