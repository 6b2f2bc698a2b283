package components

import (
	"fmt"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// AppTitle is shown at the top of every screen.
const AppTitle = "Finance Dashboard"

// HeaderInfo is the status shown next to the title.
type HeaderInfo struct {
	LoadedAt time.Time
	Source   string
	Count    int
}

// RenderHeader draws the title bar. Zero fields are left out.
func RenderHeader(theme themes.Theme, width int, info HeaderInfo) string {
	title := theme.Header.Render(AppTitle)

	var status string
	if !info.LoadedAt.IsZero() {
		status = fmt.Sprintf("%s · %s · updated %s",
			info.Source,
			pluralize(info.Count, "transaction", "transactions"),
			info.LoadedAt.Format("15:04:05"))
	} else if info.Source != "" {
		status = info.Source
	}

	if status == "" {
		return title
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(status) - 1
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.Subtitle.Render(status))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		lipgloss.NewStyle().Width(gap+1).Render(""),
		theme.Subtitle.Render(status),
	)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
