// Package cli wires the command-line surface: flag parsing, configuration,
// the scan progress line, and handoff to the interactive browser.
package cli

import (
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/config"
)

// Options collects the command-line settings for one invocation.
type Options struct {
	// Path is the root directory to analyze.
	Path string
	// FollowSymlinks traverses symbolic links to directories.
	FollowSymlinks bool
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// ConfigPath points at the optional YAML config file.
	ConfigPath string
	// Report prints a one-shot listing instead of starting the browser.
	Report bool
}

// NewCommand creates the root command for the dut CLI.
func NewCommand(version string) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "dut [path]",
		Short: "Interactive disk usage analyzer",
		Long: heredoc.Doc(`
			dut scans a directory subtree, computes cumulative disk usage for
			every file and directory under it, and opens a full-screen browser
			for drilling down and back up through the hierarchy.

			The scan runs in parallel and completes before the browser starts.
			Unreadable entries are skipped silently; the scan never fails
			because of a single bad entry. Hidden entries are included.

			Inside the browser:
			  up/down or k/j   move the selection
			  enter or right   open the selected directory
			  backspace/left   go back up
			  s                toggle name/size sorting
			  q                quit
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				opts.Path = "."
			} else {
				opts.Path = args[0]
			}

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}

			opts.Excludes = append(cfg.Exclude, opts.Excludes...)

			if !cmd.Flags().Changed("follow-symlinks") && cfg.FollowSymlinks {
				opts.FollowSymlinks = true
			}

			return run(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.FollowSymlinks, "follow-symlinks", "L", false,
		"Traverse symbolic links to directories as if they were those directories")
	cmd.Flags().StringSliceVarP(&opts.Excludes, "exclude", "e", nil,
		"Regex patterns to exclude from the scan")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", defaultConfigPath(),
		"Config file path")
	cmd.Flags().BoolVar(&opts.Report, "report", false,
		"Print the top-level listing and exit instead of opening the browser")

	return cmd
}

// defaultConfigPath resolves ~/.config/dut/config.yaml; an unresolvable home
// directory just disables the config file.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "dut", "config.yaml")
}
