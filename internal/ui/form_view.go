package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/miragrio/HMCTS/internal/domain"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	focusedLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	recentDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	deadlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	base := m.renderFormScreen()

	switch {
	case m.created != nil:
		return m.renderSuccessModal()
	case m.sync.CalendarOpen:
		return m.overlayPopup(base, m.renderCalendarPopup())
	case m.sync.PickerOpen:
		return m.overlayPopup(base, m.renderTimePickerPopup())
	}
	return base
}

func (m Model) renderFormScreen() string {
	lines := []string{
		headerStyle.Render("New Task"),
		"",
		m.renderField(focusTitle, "Title", m.titleInput.View()),
		m.renderField(focusDescription, "Description", m.descArea.View()),
		m.renderField(focusStatus, "Status", m.renderStatusField()),
		m.renderField(focusDate, "Due date", m.dateInput.View()),
		m.renderField(focusTime, "Due time", m.timeInput.View()),
		"",
		deadlineStyle.Render(fmt.Sprintf("Deadline: %s", orPlaceholder(m.sync.Deadline, "(not set)"))),
	}

	if m.submitting {
		lines = append(lines, "", pendingStyle.Render("Submitting..."))
	}
	if m.errLine != "" {
		lines = append(lines, "", errorStyle.Render("Error: "+m.errLine))
	}

	lines = append(lines, "", m.renderRecent(), "", m.renderFooter())
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderField(f focusField, label, value string) string {
	style := labelStyle
	if m.focus == f {
		style = focusedLabel
	}
	return fmt.Sprintf("%s\n%s\n", style.Render(label), value)
}

func (m Model) renderStatusField() string {
	parts := make([]string, 0, len(domain.Statuses()))
	for i, s := range domain.Statuses() {
		label := s.Label()
		if i == m.statusIdx {
			label = focusedLabel.Render("[" + label + "]")
		} else {
			label = hintStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m Model) renderRecent() string {
	if len(m.recent) == 0 {
		return recentDim.Render("No tasks yet")
	}
	lines := []string{labelStyle.Render(fmt.Sprintf("Recent tasks (%d)", len(m.recent)))}
	shown := m.recent
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, t := range shown {
		lines = append(lines, recentDim.Render(fmt.Sprintf("#%d  %s  %s  due %s",
			t.ID, t.Title, domain.Status(t.Status).Label(), m.formatDeadlineDisplay(t.Deadline))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	hints := []string{
		"tab: next field",
		"enter: next/submit",
		"ctrl+p: calendar/time picker",
		"ctrl+t: today",
		"ctrl+n: now",
		"ctrl+s: submit",
		"ctrl+c: quit",
	}
	return hintStyle.Render(strings.Join(hints, "  "))
}

func (m Model) overlayPopup(base, popup string) string {
	_ = base
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
