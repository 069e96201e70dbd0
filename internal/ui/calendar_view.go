package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/miragrio/HMCTS/internal/deadline"
)

var (
	popupBorder = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250"))
	calTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	weekdayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	dayStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	todayStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	calCursorStyle  = lipgloss.NewStyle().Bold(true).Reverse(true)
	popupHintsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func (m Model) renderCalendarPopup() string {
	grid := deadline.MonthGrid(m.sync.Calendar.Year, m.sync.Calendar.Month)
	now := m.now()

	title := calTitleStyle.Render(fmt.Sprintf("%s %d", grid.Month, grid.Year))
	weekdays := weekdayStyle.Render("Su Mo Tu We Th Fr Sa")

	var rows []string
	var row []string
	for _, cell := range grid.Cells() {
		if cell == 0 {
			row = append(row, "  ")
		} else {
			row = append(row, m.renderDayCell(grid, cell, now))
		}
		if len(row) == 7 {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	hints := popupHintsStyle.Render("enter: select  t: today  [ ]: month  esc: close")
	content := strings.Join(append([]string{title, weekdays}, append(rows, "", hints)...), "\n")
	return popupBorder.Render(content)
}

func (m Model) renderDayCell(grid deadline.Grid, day int, now time.Time) string {
	label := fmt.Sprintf("%2d", day)
	style := dayStyle
	switch {
	case day == m.calCursor:
		style = calCursorStyle
	case grid.IsSelected(day, m.sync.Date):
		style = selectedStyle
	case grid.IsToday(day, now):
		style = todayStyle
	}
	return style.Render(label)
}
