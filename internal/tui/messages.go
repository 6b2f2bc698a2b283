package tui

import (
	"time"

	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
)

// loadRequestMsg asks the model to start a fetch.
type loadRequestMsg struct{}

// feedLoadedMsg carries a normalized feed back to the event loop.
type feedLoadedMsg struct {
	loadedAt   time.Time
	view       viewmodel.DashboardView
	duration   time.Duration
	generation int
}

// feedFailedMsg reports a failed fetch.
type feedFailedMsg struct {
	err        error
	generation int
}
