package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/tree"
)

func testTree() *tree.Node {
	root := filepath.FromSlash("/scan")

	return &tree.Node{
		Path:  root,
		Size:  150,
		IsDir: true,
		Children: []*tree.Node{
			{Path: filepath.Join(root, "docs"), Size: 100, IsDir: true, Children: []*tree.Node{
				{Path: filepath.Join(root, "docs", "a.md"), Size: 100},
			}},
			{Path: filepath.Join(root, "readme"), Size: 50},
		},
	}
}

func TestView_ListsChildren(t *testing.T) {
	m := NewModel(testTree())

	view := m.View()

	for _, want := range []string{"docs/", "readme", "1 files, 1 dirs", "150 B"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q:\n%s", want, view)
		}
	}
}

func TestUpdate_NavigationChangesView(t *testing.T) {
	var m tea.Model = NewModel(testTree())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := m.(Model).View()
	if !strings.Contains(view, "a.md") {
		t.Errorf("Entering docs should display its contents:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	view = m.(Model).View()
	if !strings.Contains(view, "readme") {
		t.Errorf("Going back should display the root again:\n%s", view)
	}
}

func TestUpdate_QuitProducesQuitCmd(t *testing.T) {
	var m tea.Model = NewModel(testTree())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Quit key should produce a command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit key should produce tea.Quit")
	}
}
