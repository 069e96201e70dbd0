package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	pickerValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	pickerActiveStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	pickerArrowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

func (m Model) renderTimePickerPopup() string {
	hour := fmt.Sprintf("%02d", m.sync.Picker.Hour)
	minute := fmt.Sprintf("%02d", m.sync.Picker.Minute)

	hourStyle := pickerValueStyle
	minuteStyle := pickerValueStyle
	if m.pickerCol == columnHour {
		hourStyle = pickerActiveStyle
	} else {
		minuteStyle = pickerActiveStyle
	}

	arrows := pickerArrowStyle.Render(" ▲▼ ")
	dial := fmt.Sprintf("%s%s:%s%s",
		arrows, hourStyle.Render(hour), minuteStyle.Render(minute), arrows)

	lines := []string{
		calTitleStyle.Render("Pick a time"),
		"",
		dial,
		"",
		popupHintsStyle.Render("↑↓: change  ←→: column  n: now  enter: confirm  esc: close"),
	}
	return popupBorder.Render(strings.Join(lines, "\n"))
}
