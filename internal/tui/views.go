package tui

import (
	"github.com/Veraticus/finance-dashboard/internal/tui/components"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// RetryHint is shown under a load failure.
const RetryHint = "press r to retry · q to quit"

// View renders the current state. It has no side effects, so rendering an
// unchanged model twice gives the same string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		components.RenderHeader(m.theme, m.width, m.headerInfo()),
		"",
		m.cards.View(),
		"",
		m.renderBody(),
	}

	if m.config.ShowHelp {
		sections = append(sections, "", m.theme.Help.Render(m.help.View(m.keymap)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBody renders the area below the cards for the current state.
func (m Model) renderBody() string {
	switch m.state {
	case viewmodel.StateLoading, viewmodel.StateIdle:
		return m.status.LoadingView()
	case viewmodel.StateFailed:
		return m.status.ErrorView(m.errorMessage(), RetryHint)
	default:
		return m.table.View()
	}
}

func (m Model) headerInfo() components.HeaderInfo {
	info := components.HeaderInfo{Source: m.config.SourceLabel}
	if m.state == viewmodel.StateLoaded {
		info.LoadedAt = m.loadedAt
		info.Count = len(m.view.Rows)
	}
	return info
}
