// Package themes defines the dashboard color schemes.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Header        lipgloss.Style
	Card          lipgloss.Style
	TotalCard     lipgloss.Style
	CardLabel     lipgloss.Style
	CardValue     lipgloss.Style
	TotalValue    lipgloss.Style
	IncomeValue   lipgloss.Style
	OutcomeValue  lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	Help          lipgloss.Style
	Primary       lipgloss.Color
	Border        lipgloss.Color
}

// palette is the set of colors a theme is derived from.
type palette struct {
	primary    lipgloss.Color
	onPrimary  lipgloss.Color
	foreground lipgloss.Color
	subtle     lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	income     lipgloss.Color
	outcome    lipgloss.Color
	errorColor lipgloss.Color
}

func newTheme(p palette) Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 2)

	return Theme{
		Primary: p.primary,
		Border:  p.border,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.onPrimary).
			Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.onPrimary).
			Background(p.primary).
			Padding(0, 1),

		Card: card,
		TotalCard: card.
			BorderForeground(p.primary),
		CardLabel: lipgloss.NewStyle().
			Foreground(p.subtle),
		CardValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		TotalValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),
		IncomeValue: lipgloss.NewStyle().
			Foreground(p.income),
		OutcomeValue: lipgloss.NewStyle().
			Foreground(p.outcome),

		StatusError: lipgloss.NewStyle().
			Foreground(p.errorColor).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(p.muted),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    lipgloss.Color("#7c3aed"),
	onPrimary:  lipgloss.Color("#fafafa"),
	foreground: lipgloss.Color("#fafafa"),
	subtle:     lipgloss.Color("#a3a3a3"),
	muted:      lipgloss.Color("#737373"),
	border:     lipgloss.Color("#404040"),
	income:     lipgloss.Color("#10b981"),
	outcome:    lipgloss.Color("#ef4444"),
	errorColor: lipgloss.Color("#ef4444"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    lipgloss.Color("#cba6f7"),
	onPrimary:  lipgloss.Color("#1e1e2e"),
	foreground: lipgloss.Color("#cdd6f4"),
	subtle:     lipgloss.Color("#a6adc8"),
	muted:      lipgloss.Color("#6c7086"),
	border:     lipgloss.Color("#45475a"),
	income:     lipgloss.Color("#a6e3a1"),
	outcome:    lipgloss.Color("#f38ba8"),
	errorColor: lipgloss.Color("#f38ba8"),
})

// Names lists the selectable theme names.
var Names = []string{"default", "catppuccin-mocha"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// IsKnown reports whether name is a selectable theme.
func IsKnown(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}
