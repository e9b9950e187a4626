package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vfxforge/nukemcp/internal/command"
	"github.com/vfxforge/nukemcp/internal/logging"
	"github.com/vfxforge/nukemcp/internal/nuke"
	"github.com/vfxforge/nukemcp/internal/tools"
)

func runCall(opts rootOptions, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(rootStderr, "nukemcp: usage: nukemcp call <command> [JSON | --key value ...]")
		return ExitUsageErr
	}
	name := args[0]

	reg, err := command.Builtin()
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return ExitInternal
	}
	desc, ok := reg.Lookup(name)
	if !ok {
		fmt.Fprintf(rootStderr, "nukemcp: unknown command: %s\n", name)
		fmt.Fprintln(rootStderr, "Available commands:")
		for _, d := range reg.Descriptors() {
			fmt.Fprintf(rootStderr, "  %s\n", d.Name)
		}
		return ExitUsageErr
	}

	callArgs, err := parseCallArgs(desc, args[1:])
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return ExitUsageErr
	}

	cfg, code := resolveConfig(opts)
	if cfg == nil {
		return code
	}
	dial, reply, err := cfg.Timeouts()
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return ExitInternal
	}

	log := logging.New(os.Stderr, cfg.Log.Level)
	client := nuke.NewClient(cfg.Endpoint(), dial, reply)
	dispatcher := tools.NewDispatcher(reg, client, log)

	raw, err := dispatcher.Invoke(context.Background(), name, callArgs)
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %s\n", tools.Describe(err))
		return classifyInvokeError(err)
	}

	rootStdout.Write(ensureTrailingNewline(raw))
	return ExitOK
}

func classifyInvokeError(err error) int {
	var pe *nuke.ProtocolError
	var te *nuke.TransportError
	var re *nuke.RemoteError
	switch {
	case errors.Is(err, command.ErrInvalidArgs):
		return ExitUsageErr
	case errors.As(err, &pe):
		return ExitInternal
	case errors.As(err, &te), errors.As(err, &re):
		return ExitCallErr
	default:
		return ExitInternal
	}
}

func ensureTrailingNewline(out []byte) []byte {
	if len(out) == 0 {
		return out
	}
	if out[len(out)-1] != '\n' {
		return append(out, '\n')
	}
	return out
}
