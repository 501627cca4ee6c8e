package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"ghseek/internal/ui/views"
)

// KeyMap defines the key bindings of the search screen. Printable keys go to
// the query input, so every binding uses a non-printable key.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Open         key.Binding
	Details      key.Binding
	LoadMore     key.Binding
	DismissToast key.Binding
	Clear        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap(openLinks bool) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open profile"),
		),
		Details: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "user details"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "load more"),
		),
		DismissToast: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "dismiss error"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}.withOpenLinks(openLinks)
}

func (k KeyMap) withOpenLinks(enabled bool) KeyMap {
	k.Open.SetEnabled(enabled)
	return k
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.Details, k.LoadMore},
		{k.DismissToast, k.Clear, k.Help, k.Quit},
	}
}

// HelpSections groups the bindings for the pager help page
func (k KeyMap) HelpSections() []views.HelpSection {
	return []views.HelpSection{
		{Title: "Navigation", Bindings: []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown}},
		{Title: "Results", Bindings: []key.Binding{k.Open, k.Details, k.LoadMore}},
		{Title: "Other", Bindings: []key.Binding{k.DismissToast, k.Clear, k.Help, k.Quit}},
	}
}
