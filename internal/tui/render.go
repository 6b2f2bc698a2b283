package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/tui/components"
	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// RenderOptions controls one-shot output.
type RenderOptions struct {
	Theme       themes.Theme
	LoadedAt    time.Time
	SourceLabel string
	Width       int
}

// Render writes the cards and the full table once, without the cursor
// highlight or key help. It uses the same components as the dashboard.
func Render(w io.Writer, view viewmodel.DashboardView, opts RenderOptions) error {
	if opts.Width <= 0 {
		opts.Width = 80
	}

	cards := components.NewSummaryCards(opts.Theme)
	cards.Resize(opts.Width)
	cards.SetBalance(view.Balance)

	table := components.NewTransactionTable(opts.Theme)
	table.SetStatic()
	// header (2) plus every row
	table.Resize(opts.Width, len(view.Rows)+2)
	table.SetRows(view.Rows)

	header := components.RenderHeader(opts.Theme, opts.Width, components.HeaderInfo{
		LoadedAt: opts.LoadedAt,
		Source:   opts.SourceLabel,
		Count:    len(view.Rows),
	})

	out := lipgloss.JoinVertical(lipgloss.Left, header, "", cards.View(), "", table.View())
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("failed to write dashboard: %w", err)
	}
	return nil
}

// RenderJSON writes the normalized view as indented JSON.
func RenderJSON(w io.Writer, view viewmodel.DashboardView) error {
	if view.Rows == nil {
		view.Rows = []viewmodel.TransactionRow{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}
	return nil
}
