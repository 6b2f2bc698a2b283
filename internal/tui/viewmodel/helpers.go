package viewmodel

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// String returns a string representation of the load state.
func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StateLoaded:
		return "Loaded"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// TruncateString truncates s to maxLen display cells with an ellipsis.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// Counts tallies income and outcome rows.
func (v DashboardView) Counts() (income, outcome int) {
	for _, r := range v.Rows {
		if r.IsOutcome() {
			outcome++
		} else {
			income++
		}
	}
	return income, outcome
}
