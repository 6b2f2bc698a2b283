package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/api"
	"github.com/Veraticus/finance-dashboard/internal/fixture"
	"github.com/Veraticus/finance-dashboard/internal/format"
	"github.com/Veraticus/finance-dashboard/internal/model"
	"github.com/Veraticus/finance-dashboard/internal/tui/components"
	tuitest "github.com/Veraticus/finance-dashboard/internal/tui/testing"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func staticSource(feed model.Feed) FeedSource {
	return FeedSourceFunc(func(context.Context) (model.Feed, error) {
		return feed, nil
	})
}

func failingSource(err error) FeedSource {
	return FeedSourceFunc(func(context.Context) (model.Feed, error) {
		return model.Feed{}, err
	})
}

func newTestModel(t *testing.T, source FeedSource, opts ...Option) Model {
	t.Helper()

	clock := tuitest.NewTimeController(testNow)
	base := []Option{
		WithSource(source),
		WithFormatter(format.MustNew(format.Options{})),
		WithClock(clock.Now),
		WithSize(100, 30),
		WithSourceLabel("http://localhost:3333"),
	}

	m, err := New(context.Background(), append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

// load runs Init and the resulting fetch to completion.
func load(t *testing.T, m Model) Model {
	t.Helper()

	r := tuitest.NewTestRenderer()
	var next tea.Model = m
	for _, msg := range tuitest.Collect(m.Init()) {
		next, _ = r.Update(next, msg)
	}
	next, _ = r.ProcessCommands(next)

	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func outcomeFeed() model.Feed {
	return model.Feed{
		Balance: model.Balance{Income: 0, Outcome: 150, Total: -150},
		Transactions: []model.Transaction{
			{
				ID:        "2",
				Title:     "Groceries",
				Value:     150,
				Type:      model.TypeOutcome,
				Category:  model.Category{Title: "Food"},
				CreatedAt: model.Timestamp{Time: time.Date(2020, 5, 2, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(context.Background(), WithFormatter(format.MustNew(format.Options{})))
	assert.ErrorIs(t, err, ErrMissingSource)

	_, err = New(context.Background(), WithSource(staticSource(model.Feed{})))
	assert.ErrorIs(t, err, ErrMissingFormatter)
}

func TestModel_StartsIdleAndLoadsOnInit(t *testing.T) {
	m := newTestModel(t, staticSource(fixture.Sample()))
	assert.Equal(t, viewmodel.StateIdle, m.State())

	msgs := tuitest.Collect(m.Init())
	require.Len(t, msgs, 1)
	assert.IsType(t, loadRequestMsg{}, msgs[0])

	m, cmd := update(t, m, msgs[0])
	assert.Equal(t, viewmodel.StateLoading, m.State())
	assert.NotNil(t, cmd)

	plain := tuitest.StripANSI(m.View())
	assert.Contains(t, plain, components.LoadingMessage)
	assert.NotContains(t, plain, components.EmptyTableMessage)
}

func TestModel_ScenarioA_SingleIncome(t *testing.T) {
	m := load(t, newTestModel(t, staticSource(fixture.Sample())))

	require.Equal(t, viewmodel.StateLoaded, m.State())
	require.Len(t, m.Dashboard().Rows, 1)

	row := m.Dashboard().Rows[0]
	assert.Equal(t, "R$ 5.000,00", row.FormattedValue)
	assert.Equal(t, "R$ 5.000,00", row.SignedValue)
	assert.Equal(t, "01/05/2020", row.FormattedDate)
	assert.Equal(t, "R$ 3.000,00", m.Dashboard().Balance.FormattedTotal)

	plain := tuitest.StripANSI(m.View())
	assert.True(t, tuitest.ContainsInOrder(plain,
		components.LabelIncome, components.LabelOutcome, components.LabelTotal,
		"R$ 5.000,00", "R$ 2.000,00", "R$ 3.000,00",
		"Salary", "R$ 5.000,00", "Job", "01/05/2020",
	))
	assert.NotContains(t, plain, "- R$ 5.000,00")
	assert.Contains(t, plain, "1 transaction")
	assert.Contains(t, plain, "updated 12:00:00")
}

func TestModel_ScenarioB_OutcomeMarker(t *testing.T) {
	m := load(t, newTestModel(t, staticSource(outcomeFeed())))

	require.Equal(t, viewmodel.StateLoaded, m.State())
	assert.Contains(t, tuitest.StripANSI(m.View()), "- R$ 150,00")
}

func TestModel_ScenarioC_EmptyFeed(t *testing.T) {
	feed := model.Feed{Balance: model.Balance{}}
	m := load(t, newTestModel(t, staticSource(feed)))

	require.Equal(t, viewmodel.StateLoaded, m.State())
	assert.Empty(t, m.Dashboard().Rows)

	plain := tuitest.StripANSI(m.View())
	assert.Contains(t, plain, components.LabelIncome)
	assert.Contains(t, plain, components.LabelOutcome)
	assert.Contains(t, plain, components.LabelTotal)
	assert.Contains(t, plain, components.EmptyTableMessage)
	assert.Contains(t, plain, "0 transactions")
}

func TestModel_PreservesFeedOrder(t *testing.T) {
	feed := fixture.Generate(8, 7, testNow)
	m := load(t, newTestModel(t, staticSource(feed)))

	require.Len(t, m.Dashboard().Rows, len(feed.Transactions))
	for i, txn := range feed.Transactions {
		assert.Equal(t, txn.ID, m.Dashboard().Rows[i].ID)
	}
}

func TestModel_ViewIsIdempotent(t *testing.T) {
	m := load(t, newTestModel(t, staticSource(fixture.Generate(5, 1, testNow))))

	first := m.View()
	assert.Equal(t, first, m.View())
	assert.Equal(t, first, m.View())
}

func TestModel_FailureStates(t *testing.T) {
	tests := []struct {
		err     error
		name    string
		message string
	}{
		{
			name:    "transport",
			err:     fmt.Errorf("%w: connection refused", api.ErrTransport),
			message: "Could not reach the transactions API",
		},
		{
			name:    "status",
			err:     &api.StatusError{StatusCode: 500, Body: "boom"},
			message: "The transactions API returned an error",
		},
		{
			name:    "decode",
			err:     fmt.Errorf("%w: %w", api.ErrDecode, model.ErrUnknownTransactionType),
			message: "The transactions API sent a response the dashboard cannot read",
		},
		{
			name:    "other",
			err:     errors.New("surprise"),
			message: "Could not load transactions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := load(t, newTestModel(t, failingSource(tt.err)))

			require.Equal(t, viewmodel.StateFailed, m.State())
			assert.ErrorIs(t, m.Err(), tt.err)

			plain := tuitest.StripANSI(m.View())
			assert.Contains(t, plain, tt.message)
			assert.Contains(t, plain, RetryHint)
			assert.NotContains(t, plain, components.EmptyTableMessage)
		})
	}
}

func TestModel_RefreshRecoversFromFailure(t *testing.T) {
	calls := 0
	source := FeedSourceFunc(func(context.Context) (model.Feed, error) {
		calls++
		if calls == 1 {
			return model.Feed{}, fmt.Errorf("%w: connection refused", api.ErrTransport)
		}
		return fixture.Sample(), nil
	})

	m := load(t, newTestModel(t, source))
	require.Equal(t, viewmodel.StateFailed, m.State())

	m, cmd := update(t, m, tuitest.Key("r"))
	assert.Equal(t, viewmodel.StateLoading, m.State())

	for _, msg := range tuitest.Collect(cmd) {
		m, _ = update(t, m, msg)
	}

	assert.Equal(t, viewmodel.StateLoaded, m.State())
	assert.NoError(t, m.Err())
	assert.Equal(t, 2, calls)
}

func TestModel_StaleResultIsIgnored(t *testing.T) {
	calls := 0
	source := FeedSourceFunc(func(context.Context) (model.Feed, error) {
		calls++
		if calls == 1 {
			return outcomeFeed(), nil
		}
		return fixture.Sample(), nil
	})

	m := newTestModel(t, source)
	m, first := update(t, m, loadRequestMsg{})
	m, second := update(t, m, tuitest.Key("r"))

	// The first fetch finishes after the refresh was issued.
	for _, msg := range tuitest.Collect(first) {
		m, _ = update(t, m, msg)
	}
	assert.Equal(t, viewmodel.StateLoading, m.State())
	assert.Empty(t, m.Dashboard().Rows)

	for _, msg := range tuitest.Collect(second) {
		m, _ = update(t, m, msg)
	}
	require.Equal(t, viewmodel.StateLoaded, m.State())
	require.Len(t, m.Dashboard().Rows, 1)
	assert.Equal(t, "Salary", m.Dashboard().Rows[0].Title)
}

func TestModel_RefreshCancelsInFlightFetch(t *testing.T) {
	var contexts []context.Context
	source := FeedSourceFunc(func(ctx context.Context) (model.Feed, error) {
		contexts = append(contexts, ctx)
		return fixture.Sample(), nil
	})

	m := newTestModel(t, source)
	m, first := update(t, m, loadRequestMsg{})
	m, second := update(t, m, tuitest.Key("r"))

	tuitest.Collect(first, second)
	require.Len(t, contexts, 2)
	assert.ErrorIs(t, contexts[0].Err(), context.Canceled)
	assert.NoError(t, contexts[1].Err())
}

func TestModel_LateResultAfterQuit(t *testing.T) {
	var fetchCtx context.Context
	source := FeedSourceFunc(func(ctx context.Context) (model.Feed, error) {
		fetchCtx = ctx
		if err := ctx.Err(); err != nil {
			return model.Feed{}, err
		}
		return fixture.Sample(), nil
	})

	m := newTestModel(t, source)
	m, fetch := update(t, m, loadRequestMsg{})

	m, quit := update(t, m, tuitest.Key("q"))
	assert.IsType(t, tea.QuitMsg{}, quit())

	for _, msg := range tuitest.Collect(fetch) {
		m, _ = update(t, m, msg)
	}

	require.NotNil(t, fetchCtx)
	assert.ErrorIs(t, fetchCtx.Err(), context.Canceled)
	assert.Equal(t, viewmodel.StateLoading, m.State())
	assert.NoError(t, m.Err())
	assert.Empty(t, m.Dashboard().Rows)
	assert.Empty(t, m.View())

	_, cmd := update(t, m, loadRequestMsg{})
	assert.Nil(t, cmd)
}

func TestModel_ParentCancellationIgnoresResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	m, err := New(ctx,
		WithSource(staticSource(fixture.Sample())),
		WithFormatter(format.MustNew(format.Options{})),
	)
	require.NoError(t, err)

	m, fetch := update(t, m, loadRequestMsg{})
	cancel()

	for _, msg := range tuitest.Collect(fetch) {
		m, _ = update(t, m, msg)
	}
	assert.Equal(t, viewmodel.StateLoading, m.State())
}

func TestModel_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := load(t, newTestModel(t, staticSource(fixture.Sample())))

			_, cmd := update(t, m, tuitest.Key(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := load(t, newTestModel(t, staticSource(fixture.Sample())))

	short := tuitest.StripANSI(m.View())
	assert.Contains(t, short, "reload")
	assert.NotContains(t, short, "go to start")

	m, _ = update(t, m, tuitest.Key("?"))
	assert.Contains(t, tuitest.StripANSI(m.View()), "go to start")

	hidden := load(t, newTestModel(t, staticSource(fixture.Sample()), WithHelp(false)))
	assert.NotContains(t, tuitest.StripANSI(hidden.View()), "reload")
}

func TestModel_WindowResize(t *testing.T) {
	m := load(t, newTestModel(t, staticSource(fixture.Generate(40, 3, testNow))))

	for _, size := range []tea.WindowSizeMsg{{Width: 40, Height: 12}, {Width: 160, Height: 50}, {Width: 10, Height: 5}} {
		m, _ = update(t, m, size)
		assert.NotEmpty(t, m.View())
	}
}

func TestModel_NavigationMovesSelection(t *testing.T) {
	feed := fixture.Generate(5, 9, testNow)
	m := load(t, newTestModel(t, staticSource(feed)))

	m, cmd := update(t, m, tuitest.Key("down"))

	var selected []components.RowSelectedMsg
	for _, msg := range tuitest.Collect(cmd) {
		if sel, ok := msg.(components.RowSelectedMsg); ok {
			selected = append(selected, sel)
		}
	}
	require.Len(t, selected, 1)
	assert.Equal(t, feed.Transactions[1].ID, selected[0].ID)
	assert.Equal(t, viewmodel.StateLoaded, m.State())
}
