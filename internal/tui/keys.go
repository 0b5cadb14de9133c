package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the main view. Letter keys only apply
// while the panels have focus; the search box swallows them otherwise.
type keyMap struct {
	Quit      key.Binding
	Search    key.Binding
	Submit    key.Binding
	Blur      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Save      key.Binding
	ToRead    key.Binding
	Reading   key.Binding
	Completed key.Binding
	Remove    key.Binding
	NextGenre key.Binding
	PrevGenre key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous panel"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		ToRead: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "to read"),
		),
		Reading: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "reading"),
		),
		Completed: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "completed"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
		NextGenre: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f/F", "genre"),
		),
		PrevGenre: key.NewBinding(
			key.WithKeys("F"),
		),
	}
}

// shortcuts returns the footer entries for the given panel.
func (k keyMap) shortcuts(results bool) []ShortcutEntry {
	entries := []ShortcutEntry{
		{Key: "/", Label: "/ search"},
		{Key: "f", Label: "f genre"},
		{Key: "tab", Label: "tab panel"},
	}
	if results {
		entries = append(entries, ShortcutEntry{Key: "s", Label: "s save"})
	} else {
		entries = append(entries,
			ShortcutEntry{Key: "1", Label: "1/2/3 move"},
			ShortcutEntry{Key: "x", Label: "x remove"},
		)
	}
	return append(entries, ShortcutEntry{Key: "q", Label: "q quit"})
}
