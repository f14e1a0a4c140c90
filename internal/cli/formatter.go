package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/nav"
	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/tree"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// printReport writes the root's children, largest first, in a human-readable
// table. It renders the same snapshot the interactive browser starts from.
func printReport(root *tree.Node, writer io.Writer) error {
	snap := nav.NewController(root).Snapshot()

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t\n", snap.Path, humanize.IBytes(snap.Total))

	for _, row := range snap.Rows {
		name := row.Name
		if row.IsDir {
			name += "/"
		}

		pct := 0.0
		if snap.Total > 0 {
			pct = 100.0 * float64(row.Size) / float64(snap.Total)
		}

		fmt.Fprintf(w, "  %s\t%s\t(%.1f%%)\n", name, humanize.IBytes(row.Size), pct)
	}

	fmt.Fprintf(w, "\n%d files, %d dirs\t\t\n", snap.Files, snap.Dirs)

	return w.Flush()
}
