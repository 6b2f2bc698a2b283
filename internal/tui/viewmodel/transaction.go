package viewmodel

import (
	"time"

	"github.com/Veraticus/finance-dashboard/internal/model"
)

// OutcomeMarker prefixes the amount of money going out.
const OutcomeMarker = "- "

// Formatter produces the display strings attached during normalization.
type Formatter interface {
	Currency(value float64) string
	Date(t time.Time) string
}

// TransactionRow is one table line. It is built from a model.Transaction and
// never shares memory with it.
type TransactionRow struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Type           model.TransactionType `json:"type"`
	Category       string                `json:"category"`
	FormattedValue string                `json:"formatted_value"`
	SignedValue    string                `json:"signed_value"`
	FormattedDate  string                `json:"formatted_date"`
	Value          float64               `json:"value"`
}

// IsOutcome reports whether the row is money going out.
func (r TransactionRow) IsOutcome() bool {
	return r.Type == model.TypeOutcome
}

// BalanceSummary backs the three summary cards.
type BalanceSummary struct {
	FormattedIncome  string  `json:"formatted_income"`
	FormattedOutcome string  `json:"formatted_outcome"`
	FormattedTotal   string  `json:"formatted_total"`
	Income           float64 `json:"income"`
	Outcome          float64 `json:"outcome"`
	Total            float64 `json:"total"`
}

// Normalize attaches display strings to a feed. The feed is read only; row
// order matches feed order and the server's total is used as is.
func Normalize(feed model.Feed, f Formatter) DashboardView {
	rows := make([]TransactionRow, 0, len(feed.Transactions))
	for _, txn := range feed.Transactions {
		rows = append(rows, NewTransactionRow(txn, f))
	}

	return DashboardView{
		Rows:    rows,
		Balance: NewBalanceSummary(feed.Balance, f),
	}
}

// NewTransactionRow formats a single transaction.
func NewTransactionRow(txn model.Transaction, f Formatter) TransactionRow {
	formatted := f.Currency(txn.Value)
	signed := formatted
	if txn.IsOutcome() {
		signed = OutcomeMarker + formatted
	}

	return TransactionRow{
		ID:             txn.ID,
		Title:          txn.Title,
		Type:           txn.Type,
		Category:       txn.Category.Title,
		Value:          txn.Value,
		FormattedValue: formatted,
		SignedValue:    signed,
		FormattedDate:  f.Date(txn.CreatedAt.Time),
	}
}

// NewBalanceSummary formats the three balance figures.
func NewBalanceSummary(b model.Balance, f Formatter) BalanceSummary {
	return BalanceSummary{
		Income:           b.Income,
		Outcome:          b.Outcome,
		Total:            b.Total,
		FormattedIncome:  f.Currency(b.Income),
		FormattedOutcome: f.Currency(b.Outcome),
		FormattedTotal:   f.Currency(b.Total),
	}
}
