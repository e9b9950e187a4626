package cli

import (
	"fmt"

	"github.com/vfxforge/nukemcp/internal/config"
)

func runConfig(opts rootOptions, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(rootStderr, "nukemcp: usage: nukemcp config <init|path>")
		return ExitUsageErr
	}

	path := opts.configPath
	if path == "" {
		path = config.File()
	}

	switch args[0] {
	case "path":
		fmt.Fprintln(rootStdout, path)
		return ExitOK
	case "init":
		if err := config.WriteStarter(path); err != nil {
			fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
			return ExitInternal
		}
		fmt.Fprintf(rootStdout, "wrote %s\n", path)
		return ExitOK
	default:
		fmt.Fprintf(rootStderr, "nukemcp: unknown config command: %s\n", args[0])
		return ExitUsageErr
	}
}
