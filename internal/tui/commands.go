package tui

import (
	"context"
	"errors"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/api"
	"github.com/Veraticus/finance-dashboard/internal/common"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

// requestLoad asks the event loop to start a fetch.
func requestLoad() tea.Msg {
	return loadRequestMsg{}
}

// fetchFeed reads and normalizes the feed off the event loop. The result is
// tagged with generation so stale results can be dropped.
func fetchFeed(ctx context.Context, source FeedSource, f viewmodel.Formatter, now func() time.Time, generation int) tea.Cmd {
	return func() tea.Msg {
		start := now()

		feed, err := source.GetFeed(ctx)
		if err != nil {
			return feedFailedMsg{
				generation: generation,
				err:        describeError(err),
			}
		}

		loadedAt := now()
		return feedLoadedMsg{
			generation: generation,
			view:       viewmodel.Normalize(feed, f),
			loadedAt:   loadedAt,
			duration:   loadedAt.Sub(start),
		}
	}
}

// describeError attaches a user-facing message to a fetch error.
func describeError(err error) error {
	var statusErr *api.StatusError

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, api.ErrTransport):
		return common.NewUserError("Could not reach the transactions API", err)
	case errors.As(err, &statusErr):
		return common.NewUserError("The transactions API returned an error", err)
	case errors.Is(err, api.ErrDecode):
		return common.NewUserError("The transactions API sent a response the dashboard cannot read", err)
	default:
		return common.NewUserError("Could not load transactions", err)
	}
}
