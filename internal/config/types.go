package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config is the top-level nukemcp configuration.
type Config struct {
	Nuke NukeConfig `toml:"nuke"`
	Log  LogConfig  `toml:"log"`
}

// NukeConfig describes how to reach the bridge add-on inside Nuke.
// Durations are strings so the file reads naturally ("5s", "2m").
type NukeConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`

	DialTimeout string `toml:"dial_timeout"`
	// ReplyTimeout bounds the wait for the add-on's reply. "0s" waits
	// forever; renders and CopyCat training can legitimately run for hours.
	ReplyTimeout string `toml:"reply_timeout"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration: the add-on's stock loopback
// endpoint, a bounded dial, and an unbounded reply wait.
func Default() *Config {
	return &Config{
		Nuke: NukeConfig{
			Host:         "127.0.0.1",
			Port:         8765,
			DialTimeout:  "5s",
			ReplyTimeout: "0s",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Endpoint returns the host:port dial address for the bridge.
func (c *Config) Endpoint() string {
	return net.JoinHostPort(c.Nuke.Host, strconv.Itoa(c.Nuke.Port))
}

// Timeouts resolves the configured duration strings. Empty strings and
// "0s" disable the corresponding bound.
func (c *Config) Timeouts() (dial, reply time.Duration, err error) {
	dial, err = parseTimeout("nuke.dial_timeout", c.Nuke.DialTimeout)
	if err != nil {
		return 0, 0, err
	}
	reply, err = parseTimeout("nuke.reply_timeout", c.Nuke.ReplyTimeout)
	if err != nil {
		return 0, 0, err
	}
	return dial, reply, nil
}

func parseTimeout(key, raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must be >= 0, got %q", key, raw)
	}
	return d, nil
}
