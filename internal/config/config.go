package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/vfxforge/nukemcp/internal/paths"
)

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// File returns the config file path, honoring the NUKEMCP_CONFIG override.
func File() string {
	if v := os.Getenv("NUKEMCP_CONFIG"); v != "" {
		return v
	}
	return paths.ConfigFile()
}

// Load reads the config file and overlays NUKEMCP_* environment variables.
// A missing file is not an error; the defaults apply.
func Load() (*Config, error) {
	cfg, err := LoadFrom(File())
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads and parses a config file at the given path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	expandConfigEnvVars(cfg)
	return cfg, nil
}

// envOverrides is the NUKEMCP_* environment layer, applied on top of the
// file so an MCP client config can point at a non-default endpoint without
// writing files.
type envOverrides struct {
	Host         string `envconfig:"NUKEMCP_HOST"`
	Port         int    `envconfig:"NUKEMCP_PORT"`
	DialTimeout  string `envconfig:"NUKEMCP_DIAL_TIMEOUT"`
	ReplyTimeout string `envconfig:"NUKEMCP_REPLY_TIMEOUT"`
	LogLevel     string `envconfig:"NUKEMCP_LOG_LEVEL"`
}

// ApplyEnv overlays NUKEMCP_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("reading NUKEMCP environment: %w", err)
	}

	if env.Host != "" {
		cfg.Nuke.Host = env.Host
	}
	if env.Port != 0 {
		cfg.Nuke.Port = env.Port
	}
	if env.DialTimeout != "" {
		cfg.Nuke.DialTimeout = env.DialTimeout
	}
	if env.ReplyTimeout != "" {
		cfg.Nuke.ReplyTimeout = env.ReplyTimeout
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	return nil
}

func expandConfigEnvVars(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Nuke.Host = expandEnvVars(cfg.Nuke.Host)
	cfg.Nuke.DialTimeout = expandEnvVars(cfg.Nuke.DialTimeout)
	cfg.Nuke.ReplyTimeout = expandEnvVars(cfg.Nuke.ReplyTimeout)
	cfg.Log.Level = expandEnvVars(cfg.Log.Level)
}

// expandEnvVars replaces ${VAR_NAME} with the value of the environment variable.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRe.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match // leave unresolved vars as-is
	})
}
