package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raghav-rama/disk-usage-analyzer-tui/internal/nav"
)

// keyMap defines the keybindings of the browser.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Sort  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "left", "h"),
			key.WithHelp("backspace", "go back"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sort"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// dispatch maps a raw key event to one of the semantic navigation actions.
// Keys outside the map produce ActionNone.
func (k keyMap) dispatch(msg tea.KeyMsg) nav.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return nav.ActionQuit
	case key.Matches(msg, k.Sort):
		return nav.ActionToggleSort
	case key.Matches(msg, k.Down):
		return nav.ActionSelectNext
	case key.Matches(msg, k.Up):
		return nav.ActionSelectPrev
	case key.Matches(msg, k.Enter):
		return nav.ActionNavigateIn
	case key.Matches(msg, k.Back):
		return nav.ActionNavigateOut
	default:
		return nav.ActionNone
	}
}
