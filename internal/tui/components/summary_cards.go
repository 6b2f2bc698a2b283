package components

import (
	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardGap      = 2
	minCardWidth = 18
)

// Card labels, in display order.
const (
	LabelIncome  = "Income"
	LabelOutcome = "Outcome"
	LabelTotal   = "Total"
)

// SummaryCardsModel renders the income, outcome and total cards.
type SummaryCardsModel struct {
	theme   themes.Theme
	balance viewmodel.BalanceSummary
	width   int
	loaded  bool
}

// NewSummaryCards creates the card row. Until a balance is set the cards
// show a placeholder instead of a value.
func NewSummaryCards(theme themes.Theme) SummaryCardsModel {
	return SummaryCardsModel{
		theme: theme,
		width: 80,
	}
}

// SetBalance fills the cards.
func (m *SummaryCardsModel) SetBalance(b viewmodel.BalanceSummary) {
	m.balance = b
	m.loaded = true
}

// Resize sets the total width available to the three cards.
func (m *SummaryCardsModel) Resize(width int) {
	m.width = width
}

// View renders the cards side by side, or stacked when there is no room.
func (m SummaryCardsModel) View() string {
	income, outcome, total := m.values()

	cardWidth := (m.width - 2*cardGap) / 3
	stacked := cardWidth < minCardWidth
	if stacked {
		cardWidth = max(m.width, minCardWidth)
	}

	cards := []string{
		m.renderCard(LabelIncome, income, m.theme.Card, m.theme.IncomeValue.Bold(true), cardWidth),
		m.renderCard(LabelOutcome, outcome, m.theme.Card, m.theme.OutcomeValue.Bold(true), cardWidth),
		m.renderCard(LabelTotal, total, m.theme.TotalCard, m.theme.TotalValue, cardWidth),
	}

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	gap := lipgloss.NewStyle().Width(cardGap).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, cards[0], gap, cards[1], gap, cards[2])
}

func (m SummaryCardsModel) values() (income, outcome, total string) {
	if !m.loaded {
		return "—", "—", "—"
	}
	return m.balance.FormattedIncome, m.balance.FormattedOutcome, m.balance.FormattedTotal
}

func (m SummaryCardsModel) renderCard(label, value string, box, valueStyle lipgloss.Style, width int) string {
	inner := width - box.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.CardLabel.Render(viewmodel.TruncateString(label, inner)),
		valueStyle.Render(viewmodel.TruncateString(value, inner)),
	)

	return box.Width(width - box.GetHorizontalBorderSize()).Render(content)
}
