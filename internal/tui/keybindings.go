package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings surfaced in the help line. Editor movement keys
// are handled directly by the editor and are not listed here.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NewBlock   key.Binding
	Edit       key.Binding
	EditTitle  key.Binding
	Copy       key.Binding
	Delete     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Tasks      key.Binding
	Accept     key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NewBlock: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new block"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter", "edit"),
		),
		EditTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "rename"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete (press twice)"),
		),
		NextField: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev field"),
		),
		Tasks: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "tasks"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewBlock, k.Edit, k.Copy, k.Delete, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NewBlock, k.Edit, k.EditTitle},
		{k.Copy, k.Delete, k.NextField, k.PrevField, k.Tasks},
		{k.Accept, k.Cancel, k.Quit},
	}
}
