package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	SwitchPane key.Binding

	// Form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// List
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Delete   key.Binding
	AddPet   key.Binding
	Like     key.Binding
	Unlike   key.Binding
	QuitList key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Switch form/list"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Add pet"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d/x", "Delete pet"),
		),
		AddPet: key.NewBinding(
			key.WithKeys("a", "i", "tab"),
			key.WithHelp("a", "Add new pet"),
		),
		Like: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Increase likes"),
		),
		Unlike: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Decrease likes"),
		),
		QuitList: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer hint while the list has focus.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Like, k.Unlike, k.AddPet, k.Delete, k.Help, k.Quit}
}

// FormHelp returns the footer hint while the form has focus. Printable keys
// are typed into the fields there, so only control keys are listed.
func (k keyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.SwitchPane, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Like, k.Unlike},
		{k.AddPet, k.NextField, k.PrevField, k.Submit},
		{k.Up, k.Down, k.Top, k.Bottom, k.Delete},
		{k.SwitchPane, k.CycleTheme, k.Help, k.QuitList, k.Quit},
	}
}
