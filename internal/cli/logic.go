package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/scanner"
	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/tree"
	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/ui"
)

func run(opts Options) error {
	root, err := canonicalize(opts.Path)
	if err != nil {
		return err
	}

	enableProgress := !opts.Report && isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(entries, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(entries, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s",
				entries, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := scanner.Scan(context.Background(), root, scanner.Options{
		FollowSymlinks: opts.FollowSymlinks,
		Excludes:       opts.Excludes,
	}, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	sizes := tree.Aggregate(result.Entries, root)
	node := tree.Build(root, result.Entries, sizes)

	if opts.Report {
		return printReport(node, os.Stdout)
	}

	return ui.Run(node)
}

// canonicalize resolves path to an absolute, symlink-free form. Failure here
// is fatal and surfaces as a non-zero exit.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %q: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("canonicalizing %q: %w", path, err)
	}

	return resolved, nil
}
