package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wrenhold/commute/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateEditing:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = docStyle.Render(m.entryList.View())
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("commute — %02d:%02d:%02d", m.now.Hour(), m.now.Minute(), m.now.Second())),
		content,
	}
	if m.formError != "" {
		sections = append(sections, dangerStyle.Render(m.formError))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this commute?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
