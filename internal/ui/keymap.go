package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Submit     key.Binding
	OpenPicker key.Binding
	Today      key.Binding
	Now        key.Binding

	// single-letter variants, safe only while a popup captures input
	PopupToday key.Binding
	PopupNow   key.Binding

	// calendar popup
	DayLeft   key.Binding
	DayRight  key.Binding
	WeekUp    key.Binding
	WeekDown  key.Binding
	MonthPrev key.Binding
	MonthNext key.Binding

	// time picker popup
	ColumnLeft  key.Binding
	ColumnRight key.Binding
	ValueUp     key.Binding
	ValueDown   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		OpenPicker: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "open picker")),
		Today:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "today")),
		Now:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "now")),
		PopupToday: key.NewBinding(key.WithKeys("t", "ctrl+t"), key.WithHelp("t", "today")),
		PopupNow:   key.NewBinding(key.WithKeys("n", "ctrl+n"), key.WithHelp("n", "now")),

		DayLeft:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		DayRight:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		WeekUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous week")),
		WeekDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		MonthPrev: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "previous month")),
		MonthNext: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),

		ColumnLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "hours")),
		ColumnRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "minutes")),
		ValueUp:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "increment")),
		ValueDown:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "decrement")),
	}
}
