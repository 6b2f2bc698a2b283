package components

import (
	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingMessage is shown while the feed is being fetched.
const LoadingMessage = "Loading transactions..."

// StatusModel renders the loading and failure panels.
type StatusModel struct {
	theme   themes.Theme
	spinner spinner.Model
}

// NewStatus creates the status panel.
func NewStatus(theme themes.Theme) StatusModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
	)
	return StatusModel{theme: theme, spinner: s}
}

// Tick starts the spinner animation.
func (m StatusModel) Tick() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner.
func (m StatusModel) Update(msg tea.Msg) (StatusModel, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// LoadingView renders the spinner line.
func (m StatusModel) LoadingView() string {
	return m.spinner.View() + " " + m.theme.StatusPending.Render(LoadingMessage)
}

// ErrorView renders a failure with the hint for retrying.
func (m StatusModel) ErrorView(message, hint string) string {
	lines := []string{m.theme.StatusError.Render("✗ " + message)}
	if hint != "" {
		lines = append(lines, m.theme.Help.Render(hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
