package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vfxforge/nukemcp/internal/command"
)

const summaryWidth = 80

func runTools(args []string) int {
	verbose := false
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		default:
			fmt.Fprintf(rootStderr, "nukemcp: unknown tools flag: %s\n", arg)
			return ExitUsageErr
		}
	}

	reg, err := command.Builtin()
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return ExitInternal
	}

	descs := reg.Descriptors()
	sort.Slice(descs, func(i, j int) bool { return descs[i].Name < descs[j].Name })

	for _, d := range descs {
		line := d.Name
		if desc := summarize(d.Desc, verbose); desc != "" {
			line += "\t" + desc
		}
		fmt.Fprintln(rootStdout, line)
	}
	return ExitOK
}

// summarize keeps the first line of a description and truncates it to a
// terminal-friendly width unless verbose output was asked for.
func summarize(desc string, verbose bool) string {
	desc = strings.TrimSpace(desc)
	if verbose {
		return desc
	}
	if idx := strings.IndexByte(desc, '\n'); idx >= 0 {
		desc = strings.TrimSpace(desc[:idx])
	}
	if len(desc) > summaryWidth {
		desc = desc[:summaryWidth-3] + "..."
	}
	return desc
}

func runSchema(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(rootStderr, "nukemcp: usage: nukemcp schema <command>")
		return ExitUsageErr
	}

	reg, err := command.Builtin()
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: %v\n", err)
		return ExitInternal
	}
	desc, ok := reg.Lookup(args[0])
	if !ok {
		fmt.Fprintf(rootStderr, "nukemcp: unknown command: %s\n", args[0])
		return ExitUsageErr
	}

	payload := map[string]any{
		"name":         desc.Name,
		"description":  desc.Desc,
		"input_schema": desc.InputSchema(),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Fprintf(rootStderr, "nukemcp: rendering schema: %v\n", err)
		return ExitInternal
	}
	rootStdout.Write(append(data, '\n'))
	return ExitOK
}
