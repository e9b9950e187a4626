package main

import (
	"os"

	"github.com/vfxforge/nukemcp/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
