// Package viewmodel holds the display-ready data the dashboard renders.
// Nothing here touches the terminal; components turn these values into text.
package viewmodel

// LoadState is the lifecycle of one dashboard instance.
type LoadState int

const (
	// StateIdle means no load has been requested yet.
	StateIdle LoadState = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateLoaded means the last fetch succeeded and a view is available.
	StateLoaded
	// StateFailed means the last fetch failed.
	StateFailed
)

// DashboardView is everything the dashboard draws for one feed.
type DashboardView struct {
	Rows    []TransactionRow `json:"transactions"`
	Balance BalanceSummary   `json:"balance"`
}

// IsEmpty reports whether the feed carried no transactions.
func (v DashboardView) IsEmpty() bool {
	return len(v.Rows) == 0
}
