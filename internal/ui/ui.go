// Package ui renders navigation snapshots as a full-screen terminal browser
// built on bubbletea. The alternate screen is entered and left by the
// bubbletea runtime, which restores the terminal on every exit path.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/nav"
	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/tree"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	dirStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model wrapping the navigation controller. The tree
// is read-only after construction; the model only holds view state.
type Model struct {
	ctrl   *nav.Controller
	keys   keyMap
	width  int
	height int
}

// NewModel creates a browser over the given sized tree.
func NewModel(root *tree.Node) Model {
	return Model{
		ctrl: nav.NewController(root),
		keys: defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes at most one action per message. Quit is the caller's
// transition; everything else is delegated to the controller, which treats
// invalid actions as no-ops.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

		return m, nil
	case tea.KeyMsg:
		action := m.keys.dispatch(msg)
		if action == nav.ActionQuit {
			return m, tea.Quit
		}

		m.ctrl.Apply(action)

		return m, nil
	}

	return m, nil
}

// View renders the current snapshot: header with the viewed path, one row per
// child with the selection in reverse video, and a status bar with counts and
// the aggregate total.
func (m Model) View() string {
	snap := m.ctrl.Snapshot()

	var b strings.Builder

	b.WriteString(headerStyle.Render("Disk Usage — "+snap.Path) + "\n\n")

	nameWidth := 0
	for _, row := range snap.Rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
	}

	// Leave room for the indent, the size column and the dir suffix.
	if m.width > 0 && nameWidth > m.width-16 {
		nameWidth = max(8, m.width-16)
	}

	visible, offset := m.visibleRows(len(snap.Rows), snap.Selection)

	for i := offset; i < offset+visible; i++ {
		row := snap.Rows[i]

		name := row.Name
		if len(name) > nameWidth {
			name = name[:nameWidth]
		}
		if row.IsDir {
			name += "/"
		}

		line := fmt.Sprintf("  %-*s  %10s", nameWidth+1, name, humanize.Bytes(row.Size))

		switch {
		case i == snap.Selection:
			line = selectedStyle.Render(line)
		case row.IsDir:
			line = dirStyle.Render(line)
		}

		b.WriteString(line + "\n")
	}

	if len(snap.Rows) == 0 {
		b.WriteString(statusStyle.Render("  (empty)") + "\n")
	}

	status := fmt.Sprintf("%d files, %d dirs | total %s",
		snap.Files, snap.Dirs, humanize.Bytes(snap.Total))
	sortLabel := "size"
	if snap.Order == nav.SortByName {
		sortLabel = "name"
	}

	b.WriteString("\n" + statusStyle.Render(status+" | sort: "+sortLabel) + "\n")
	b.WriteString(statusStyle.Render("↑/↓ move  enter open  backspace up  s sort  q quit"))

	return b.String()
}

// visibleRows clamps the row window to the terminal height, keeping the
// selection in view.
func (m Model) visibleRows(total, selection int) (visible, offset int) {
	// Header, blank line, blank line, status, help.
	const chrome = 5

	visible = total
	if m.height > 0 && m.height-chrome < visible {
		visible = m.height - chrome
	}

	if visible < 1 {
		visible = min(1, total)
	}

	if selection >= visible {
		offset = selection - visible + 1
	}

	if offset+visible > total {
		offset = total - visible
	}

	if offset < 0 {
		offset = 0
	}

	return visible, offset
}

// Run enters the alternate screen and drives the browser until the user
// quits. A failure to initialize or run the display surfaces as an error.
func Run(root *tree.Node) error {
	if _, err := tea.NewProgram(NewModel(root), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running interactive display: %w", err)
	}

	return nil
}
