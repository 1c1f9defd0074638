package practice

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Digit     key.Binding
	Backspace key.Binding
	Submit    key.Binding
	Decline   key.Binding
	Undo      key.Binding
	NextField key.Binding
	Numerator key.Binding
	Denom     key.Binding
	Hint      key.Binding
	PlayAgain key.Binding
	Retry     key.Binding
}

var keys = keyMap{
	Digit:     key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "type")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "check")),
	Decline:   key.NewBinding(key.WithKeys("x", "X"), key.WithHelp("X", "can't reduce")),
	Undo:      key.NewBinding(key.WithKeys("u", "U"), key.WithHelp("U", "undo")),
	NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "next box")),
	Numerator: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "top")),
	Denom:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "bottom")),
	Hint:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hint")),
	PlayAgain: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("R", "play again")),
	Retry:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "try again")),
}
