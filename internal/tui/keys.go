package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextEditor key.Binding
	PrevEditor key.Binding
	Up         key.Binding
	Down       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	Edit       key.Binding
	Cancel     key.Binding
	NextPreset key.Binding
	PrevPreset key.Binding
	Copy       key.Binding

	AddLayer       key.Binding
	DuplicateLayer key.Binding
	RemoveLayer    key.Binding
	PrevLayer      key.Binding
	NextLayer      key.Binding
	MoveLayerUp    key.Binding
	MoveLayerDown  key.Binding
	AddStop        key.Binding
	RemoveStop     key.Binding
	PrevStop       key.Binding
	NextStop       key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextEditor: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next editor")),
		PrevEditor: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev editor")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Decrease:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Increase:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Edit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/apply")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextPreset: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		PrevPreset: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "prev preset")),
		Copy:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy css")),

		AddLayer:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add layer")),
		DuplicateLayer: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "duplicate layer")),
		RemoveLayer:    key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "remove layer")),
		PrevLayer:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev layer")),
		NextLayer:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next layer")),
		MoveLayerUp:    key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move layer up")),
		MoveLayerDown:  key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move layer down")),
		AddStop:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add stop")),
		RemoveStop:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "remove stop")),
		PrevStop:       key.NewBinding(key.WithKeys(","), key.WithHelp(",", "prev stop")),
		NextStop:       key.NewBinding(key.WithKeys("."), key.WithHelp(".", "next stop")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextEditor, k.Edit, k.NextPreset, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextEditor, k.PrevEditor, k.Up, k.Down, k.Decrease, k.Increase},
		{k.Edit, k.Cancel, k.NextPreset, k.PrevPreset, k.Copy},
		{k.AddLayer, k.DuplicateLayer, k.RemoveLayer, k.PrevLayer, k.NextLayer, k.MoveLayerUp, k.MoveLayerDown},
		{k.AddStop, k.RemoveStop, k.PrevStop, k.NextStop, k.Help, k.Quit},
	}
}
