package cli

import (
	"fmt"
	"io"
)

func printRootHelp(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  nukemcp serve [--http ADDR]")
	fmt.Fprintln(out, "  nukemcp call <command> [JSON | --key value ...]")
	fmt.Fprintln(out, "  nukemcp tools [--verbose]")
	fmt.Fprintln(out, "  nukemcp schema <command>")
	fmt.Fprintln(out, "  nukemcp config <init|path>")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Global flags (before the subcommand):")
	fmt.Fprintln(out, "  --config PATH      Config file to use")
	fmt.Fprintln(out, "  --endpoint H:P     Nuke bridge endpoint (default 127.0.0.1:8765)")
	fmt.Fprintln(out, "  --timeout DUR      Reply timeout; 0s waits forever")
	fmt.Fprintln(out, "  --log-level LEVEL  debug, info, warn, or error")
	fmt.Fprintln(out, "  --help, -h         Show help")
	fmt.Fprintln(out, "  --version, -V      Show version")
}
