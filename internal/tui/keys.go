package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Next      key.Binding
	Present   key.Binding
	Invalid   key.Binding
	Missing   key.Binding
	Skip      key.Binding
	Comply    key.Binding
	NotComply key.Binding
	NotApply  key.Binding
	Toggle    key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "arriba")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "abajo")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continuar")),
		Next:      key.NewBinding(key.WithKeys(" ", "right"), key.WithHelp("espacio", "siguiente línea")),
		Present:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "presentado")),
		Invalid:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "con observaciones")),
		Missing:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "faltante")),
		Skip:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "no responder")),
		Comply:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cumple")),
		NotComply: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no cumple")),
		NotApply:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "no aplica")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("espacio/x", "marcar hecho")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reiniciar")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "salir")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Next},
		{k.Present, k.Invalid, k.Missing, k.Skip},
		{k.Comply, k.NotComply, k.NotApply, k.Toggle},
		{k.Reset, k.Help, k.Quit},
	}
}
