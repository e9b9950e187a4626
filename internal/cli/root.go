// Package cli is the composition root: it parses the command line, loads
// configuration, wires the registry, transport, and dispatcher together,
// and maps every outcome to an exit code.
package cli

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/vfxforge/nukemcp/internal/config"
)

// Run is the main CLI entry point. Returns an exit code.
func Run(args []string) int {
	if handled, code := handleRootFlags(args); handled {
		return code
	}

	opts, rest, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return ExitUsageErr
	}

	if len(rest) == 0 {
		printRootHelp(rootStdout)
		return ExitOK
	}

	switch rest[0] {
	case "serve":
		return runServe(opts, rest[1:])
	case "call":
		return runCall(opts, rest[1:])
	case "tools":
		return runTools(rest[1:])
	case "schema":
		return runSchema(rest[1:])
	case "config":
		return runConfig(opts, rest[1:])
	case "help":
		printRootHelp(rootStdout)
		return ExitOK
	default:
		fmt.Fprintf(rootStderr, "nukemcp: unknown command: %s\n", rest[0])
		printRootHelp(rootStderr)
		return ExitUsageErr
	}
}

// rootOptions are the global flags accepted before the subcommand. Each
// overrides the corresponding config field.
type rootOptions struct {
	configPath string
	endpoint   string
	timeout    string
	logLevel   string
}

func parseGlobalFlags(args []string) (rootOptions, []string, error) {
	var opts rootOptions

	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			break
		}

		key := strings.TrimPrefix(arg, "--")
		var value string
		if eq := strings.Index(key, "="); eq >= 0 {
			value = key[eq+1:]
			key = key[:eq]
		} else {
			if i+1 >= len(args) {
				return rootOptions{}, nil, fmt.Errorf("missing value for --%s", key)
			}
			i++
			value = args[i]
		}

		switch key {
		case "config":
			opts.configPath = value
		case "endpoint":
			opts.endpoint = value
		case "timeout":
			opts.timeout = value
		case "log-level":
			opts.logLevel = value
		default:
			return rootOptions{}, nil, fmt.Errorf("unknown global flag: --%s", key)
		}
		i++
	}

	return opts, args[i:], nil
}

// resolveConfig loads the config file, overlays the environment, applies
// the global flag overrides, and validates the result. On failure it
// writes the message to stderr and returns a nil config with the exit
// code the caller should return.
func resolveConfig(opts rootOptions) (*config.Config, int) {
	path := opts.configPath
	if path == "" {
		path = config.File()
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return nil, ExitInternal
	}
	if err := config.ApplyEnv(cfg); err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return nil, ExitInternal
	}

	if opts.endpoint != "" {
		host, portStr, err := net.SplitHostPort(opts.endpoint)
		if err != nil {
			fmt.Fprintf(rootStderr, "nukemcp: invalid --endpoint %q: %v\n", opts.endpoint, err)
			return nil, ExitUsageErr
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			fmt.Fprintf(rootStderr, "nukemcp: invalid --endpoint port %q: %v\n", portStr, err)
			return nil, ExitUsageErr
		}
		cfg.Nuke.Host = host
		cfg.Nuke.Port = port
	}
	if opts.timeout != "" {
		cfg.Nuke.ReplyTimeout = opts.timeout
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: invalid config: %v\n", err)
		return nil, ExitUsageErr
	}
	return cfg, ExitOK
}
