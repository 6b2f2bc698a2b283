package components

import (
	"strings"

	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Column titles, in display order.
const (
	ColumnTitle    = "Title"
	ColumnAmount   = "Amount"
	ColumnCategory = "Category"
	ColumnDate     = "Date"
)

const (
	amountColumn = 1

	minAmountWidth = 16
	categoryWidth  = 16
	dateWidth      = 10
	minTitleWidth  = 12
	// cellPadding is the horizontal padding bubbles/table adds to each cell.
	cellPadding = 2
)

// EmptyTableMessage is shown below the header when the feed has no rows.
const EmptyTableMessage = "No transactions yet."

// TransactionTableModel lists transactions in feed order.
type TransactionTableModel struct {
	theme       themes.Theme
	rows        []viewmodel.TransactionRow
	table       table.Model
	width       int
	height      int
	amountWidth int
	static      bool
}

// NewTransactionTable creates an empty table.
func NewTransactionTable(theme themes.Theme) TransactionTableModel {
	t := table.New(
		table.WithColumns(columnsFor(80, minAmountWidth)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := tableStyles(theme)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return TransactionTableModel{
		theme:       theme,
		table:       t,
		width:       80,
		height:      10,
		amountWidth: minAmountWidth,
	}
}

func tableStyles(theme themes.Theme) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	return s
}

// SetStatic turns off the cursor and key handling, for output that is
// printed once instead of driven interactively. Static rows color each
// amount by its direction.
func (m *TransactionTableModel) SetStatic() {
	s := tableStyles(m.theme)
	s.Selected = lipgloss.NewStyle()
	m.table.SetStyles(s)
	m.table.Blur()
	m.static = true
}

// columnsFor splits width between the columns. The amount column is never
// narrower than amount, so formatted values are not cut.
func columnsFor(width, amount int) []table.Column {
	fixed := amount + categoryWidth + dateWidth + 4*cellPadding
	title := max(width-fixed, minTitleWidth)

	return []table.Column{
		{Title: ColumnTitle, Width: title},
		{Title: ColumnAmount, Width: amount},
		{Title: ColumnCategory, Width: categoryWidth},
		{Title: ColumnDate, Width: dateWidth},
	}
}

// SetRows replaces the listed transactions. If the previously selected
// transaction is still present the cursor follows it by id.
func (m *TransactionTableModel) SetRows(rows []viewmodel.TransactionRow) {
	selected := m.SelectedID()

	m.rows = rows
	m.amountWidth = minAmountWidth
	tableRows := make([]table.Row, 0, len(rows))
	cursor := 0
	for i, r := range rows {
		tableRows = append(tableRows, table.Row{r.Title, r.SignedValue, r.Category, r.FormattedDate})
		m.amountWidth = max(m.amountWidth, runewidth.StringWidth(r.SignedValue))
		if selected != "" && r.ID == selected {
			cursor = i
		}
	}

	m.table.SetRows(tableRows)
	m.table.SetColumns(columnsFor(m.width, m.amountWidth))
	m.table.SetCursor(cursor)
}

// Rows returns the rows currently listed.
func (m TransactionTableModel) Rows() []viewmodel.TransactionRow {
	return m.rows
}

// SelectedID returns the id of the row under the cursor, or "".
func (m TransactionTableModel) SelectedID() string {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.rows) {
		return ""
	}
	return m.rows[c].ID
}

// Resize fits the table into width x height cells.
func (m *TransactionTableModel) Resize(width, height int) {
	m.width = width
	m.height = max(height, 3)
	m.table.SetColumns(columnsFor(width, m.amountWidth))
	m.table.SetWidth(width)
	m.table.SetHeight(m.height)
}

// Update handles navigation keys.
func (m TransactionTableModel) Update(msg tea.Msg) (TransactionTableModel, tea.Cmd) {
	if m.static {
		return m, nil
	}

	before := m.table.Cursor()

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	if after := m.table.Cursor(); after != before && after >= 0 && after < len(m.rows) {
		id := m.rows[after].ID
		selected := func() tea.Msg {
			return RowSelectedMsg{ID: id, Index: after}
		}
		return m, tea.Batch(cmd, selected)
	}

	return m, cmd
}

// View renders the table.
func (m TransactionTableModel) View() string {
	header := firstLines(m.table.View(), 2)

	if len(m.rows) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.theme.StatusPending.Render(EmptyTableMessage),
		)
	}
	if m.static {
		return m.staticView(header)
	}
	return m.table.View()
}

// staticView lays out every row itself. bubbles/table measures cells with
// runewidth, which counts escape codes, so it cannot take colored amounts.
func (m TransactionTableModel) staticView(header string) string {
	cols := m.table.Columns()
	cell := table.DefaultStyles().Cell

	lines := make([]string, 0, len(m.rows)+1)
	lines = append(lines, header)

	for _, r := range m.rows {
		values := []string{r.Title, r.SignedValue, r.Category, r.FormattedDate}
		cells := make([]string, 0, len(values))

		for i, value := range values {
			width := cols[i].Width
			text := runewidth.Truncate(value, width, "…")
			if i == amountColumn {
				text = m.amountStyle(r).Render(text)
			}
			fitted := lipgloss.NewStyle().Width(width).MaxWidth(width).Inline(true).Render(text)
			cells = append(cells, cell.Render(fitted))
		}

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(lines, "\n")
}

func (m TransactionTableModel) amountStyle(r viewmodel.TransactionRow) lipgloss.Style {
	if r.IsOutcome() {
		return m.theme.OutcomeValue
	}
	return m.theme.IncomeValue
}
