package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/miragrio/HMCTS/internal/domain"
)

var (
	modalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	modalLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	modalValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// renderSuccessModal shows the server's echo of the stored task. The
// record on screen is exactly what came back, not the draft that was sent.
func (m Model) renderSuccessModal() string {
	t := m.created

	width := minInt(64, maxInt(40, m.width-8))

	rows := []string{
		modalTitleStyle.Render("Task created"),
		"",
		modalRow("ID", fmt.Sprintf("#%d", t.ID)),
		modalRow("Title", t.Title),
		modalRow("Status", domain.Status(t.Status).Label()),
		modalRow("Deadline", m.formatDeadlineDisplay(t.Deadline)),
		modalRow("Created", m.formatCreatedAtDisplay(t.CreatedAt)),
	}

	if strings.TrimSpace(t.Description) != "" {
		rows = append(rows, "", modalLabelStyle.Render("Description"))
		rows = append(rows, renderDescriptionMarkdown(t.Description, width-4))
	}

	rows = append(rows, "", popupHintsStyle.Render("enter/esc: close"))

	panel := popupBorder.Width(width).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func modalRow(label, value string) string {
	return fmt.Sprintf("%s %s",
		modalLabelStyle.Render(fmt.Sprintf("%-9s", label+":")),
		modalValueStyle.Render(value))
}

func renderDescriptionMarkdown(md string, width int) string {
	if width < 20 {
		width = 20
	}
	style := styles.DarkStyleConfig
	style.Document.Margin = uintPtr(0)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(width),
		glamour.WithStyles(style),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n")
}

func uintPtr(v uint) *uint {
	return &v
}
