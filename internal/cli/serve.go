package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/vfxforge/nukemcp/internal/command"
	"github.com/vfxforge/nukemcp/internal/config"
	"github.com/vfxforge/nukemcp/internal/logging"
	"github.com/vfxforge/nukemcp/internal/nuke"
	"github.com/vfxforge/nukemcp/internal/tools"
)

// serveStdio and serveHTTP are swappable so tests can exercise the serve
// path without binding stdio or a listener.
var (
	serveStdio = func(s *server.MCPServer) error {
		return server.ServeStdio(s)
	}
	serveHTTP = func(s *server.MCPServer, addr string) error {
		return server.NewStreamableHTTPServer(s).Start(addr)
	}
)

func runServe(opts rootOptions, args []string) int {
	var httpAddr string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--http":
			if i+1 >= len(args) {
				fmt.Fprintln(rootStderr, "nukemcp: missing value for --http")
				return ExitUsageErr
			}
			i++
			httpAddr = args[i]
		case strings.HasPrefix(args[i], "--http="):
			httpAddr = strings.TrimPrefix(args[i], "--http=")
		default:
			fmt.Fprintf(rootStderr, "nukemcp: unknown serve flag: %s\n", args[i])
			return ExitUsageErr
		}
	}

	cfg, code := resolveConfig(opts)
	if cfg == nil {
		return code
	}

	s, log, err := buildServer(cfg)
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return ExitInternal
	}

	if httpAddr != "" {
		log.Info("serving", "transport", "http", "listen", httpAddr, "nuke", cfg.Endpoint(), "version", buildVersion)
		if err := serveHTTP(s, httpAddr); err != nil {
			fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
			return ExitInternal
		}
		return ExitOK
	}

	// On stdio, stdout carries only MCP traffic; everything else is on
	// stderr via the logger.
	log.Info("serving", "transport", "stdio", "nuke", cfg.Endpoint(), "version", buildVersion)
	if err := serveStdio(s); err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return ExitInternal
	}
	return ExitOK
}

// buildServer wires the full bridge: logger, registry, transport client,
// dispatcher, and MCP server, with nothing package-global.
func buildServer(cfg *config.Config) (*server.MCPServer, *slog.Logger, error) {
	log := logging.New(os.Stderr, cfg.Log.Level)

	reg, err := command.Builtin()
	if err != nil {
		return nil, nil, err
	}
	dial, reply, err := cfg.Timeouts()
	if err != nil {
		return nil, nil, err
	}

	client := nuke.NewClient(cfg.Endpoint(), dial, reply)
	dispatcher := tools.NewDispatcher(reg, client, log)

	s := server.NewMCPServer("nukemcp", buildVersion, server.WithToolCapabilities(true))
	tools.RegisterAll(s, dispatcher)
	return s, log, nil
}
