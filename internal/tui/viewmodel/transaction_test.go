package viewmodel

import (
	"testing"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/format"
	"github.com/Veraticus/finance-dashboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioFeed() model.Feed {
	return model.Feed{
		Balance: model.Balance{Income: 5000, Outcome: 2000, Total: 3000},
		Transactions: []model.Transaction{
			{
				ID:        "1",
				Title:     "Salary",
				Value:     5000,
				Type:      model.TypeIncome,
				Category:  model.Category{Title: "Job"},
				CreatedAt: model.Timestamp{Time: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
}

func TestNormalize_ScenarioA(t *testing.T) {
	view := Normalize(scenarioFeed(), format.MustNew(format.Options{}))

	assert.Equal(t, "R$ 5.000,00", view.Balance.FormattedIncome)
	assert.Equal(t, "R$ 2.000,00", view.Balance.FormattedOutcome)
	assert.Equal(t, "R$ 3.000,00", view.Balance.FormattedTotal)

	require.Len(t, view.Rows, 1)
	row := view.Rows[0]
	assert.Equal(t, "1", row.ID)
	assert.Equal(t, "Salary", row.Title)
	assert.Equal(t, "R$ 5.000,00", row.FormattedValue)
	assert.Equal(t, "R$ 5.000,00", row.SignedValue)
	assert.Equal(t, "Job", row.Category)
	assert.Equal(t, "01/05/2020", row.FormattedDate)
	assert.False(t, row.IsOutcome())
}

func TestNormalize_ScenarioB_OutcomeMarker(t *testing.T) {
	feed := model.Feed{
		Transactions: []model.Transaction{
			{ID: "2", Title: "Pharmacy", Value: 150, Type: model.TypeOutcome, Category: model.Category{Title: "Health"}},
		},
	}

	view := Normalize(feed, format.MustNew(format.Options{}))

	require.Len(t, view.Rows, 1)
	assert.Equal(t, "R$ 150,00", view.Rows[0].FormattedValue)
	assert.Equal(t, "- R$ 150,00", view.Rows[0].SignedValue)
	assert.True(t, view.Rows[0].IsOutcome())
}

func TestNormalize_ScenarioC_Empty(t *testing.T) {
	view := Normalize(model.Feed{}, format.MustNew(format.Options{}))

	assert.True(t, view.IsEmpty())
	assert.NotNil(t, view.Rows)
	assert.Equal(t, "R$ 0,00", view.Balance.FormattedIncome)
	assert.Equal(t, "R$ 0,00", view.Balance.FormattedOutcome)
	assert.Equal(t, "R$ 0,00", view.Balance.FormattedTotal)
}

func TestNormalize_FormattedValuesMatchFormatter(t *testing.T) {
	f := format.MustNew(format.Options{})
	feed := model.Feed{
		Balance: model.Balance{Income: 10.1, Outcome: 99999.99, Total: -99989.89},
		Transactions: []model.Transaction{
			{ID: "a", Value: 0.01, Type: model.TypeIncome},
			{ID: "b", Value: 1234.5, Type: model.TypeOutcome},
			{ID: "c", Value: 42, Type: model.TypeIncome},
		},
	}

	view := Normalize(feed, f)

	for i, txn := range feed.Transactions {
		assert.Equal(t, f.Currency(txn.Value), view.Rows[i].FormattedValue)
	}
	assert.Equal(t, f.Currency(feed.Balance.Total), view.Balance.FormattedTotal)
	assert.Equal(t, -99989.89, view.Balance.Total, "server total must not be recomputed")
}

func TestNormalize_PreservesOrder(t *testing.T) {
	feed := model.Feed{
		Transactions: []model.Transaction{
			{ID: "z", Type: model.TypeIncome, CreatedAt: model.Timestamp{Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}},
			{ID: "a", Type: model.TypeOutcome, CreatedAt: model.Timestamp{Time: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)}},
			{ID: "m", Type: model.TypeIncome, CreatedAt: model.Timestamp{Time: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)}},
		},
	}

	view := Normalize(feed, format.MustNew(format.Options{}))

	ids := make([]string, 0, len(view.Rows))
	for _, r := range view.Rows {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

func TestNormalize_DoesNotMutateFeed(t *testing.T) {
	feed := scenarioFeed()
	before := scenarioFeed()

	view := Normalize(feed, format.MustNew(format.Options{}))
	view.Rows[0].Title = "changed"

	assert.Equal(t, before, feed)
}

type stubFormatter struct{}

func (stubFormatter) Currency(v float64) string { return "¤" }
func (stubFormatter) Date(time.Time) string     { return "d" }

func TestNormalize_UsesInjectedFormatter(t *testing.T) {
	view := Normalize(scenarioFeed(), stubFormatter{})

	assert.Equal(t, "¤", view.Rows[0].FormattedValue)
	assert.Equal(t, "d", view.Rows[0].FormattedDate)
	assert.Equal(t, "¤", view.Balance.FormattedTotal)
}

func TestDashboardView_Counts(t *testing.T) {
	view := DashboardView{Rows: []TransactionRow{
		{Type: model.TypeIncome},
		{Type: model.TypeOutcome},
		{Type: model.TypeOutcome},
	}}

	income, outcome := view.Counts()
	assert.Equal(t, 1, income)
	assert.Equal(t, 2, outcome)
}

func TestLoadState_String(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Loading", StateLoading.String())
	assert.Equal(t, "Loaded", StateLoaded.String())
	assert.Equal(t, "Failed", StateFailed.String())
	assert.Equal(t, "Unknown(9)", LoadState(9).String())
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Salary", TruncateString("Salary", 10))
	assert.Equal(t, "Super…", TruncateString("Supermarket", 6))
	assert.Equal(t, "", TruncateString("Supermarket", 0))
}
