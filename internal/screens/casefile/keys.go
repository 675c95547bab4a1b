package casefile

import "charm.land/bubbles/v2/key"

type keyMap struct {
	ToggleFocus key.Binding
	Back        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	NewCase     key.Binding
	Submit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Switch pane"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Menu"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "Scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "Scroll down"),
		),
		NewCase: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New case"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Submit"),
		),
	}
}
