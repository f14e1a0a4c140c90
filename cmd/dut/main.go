package main

import (
	"fmt"
	"os"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dut: %v\n", err)
		os.Exit(1)
	}
}
