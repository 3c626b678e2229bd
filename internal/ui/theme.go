package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the popup.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	SurfaceAlt string

	// List colors
	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Frame lipgloss.Style
	Title lipgloss.Style

	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	Row      lipgloss.Style
	Selected lipgloss.Style
	Removing lipgloss.Style
	Icon     lipgloss.Style

	Toast      lipgloss.Style
	ToastError lipgloss.Style
	Footer     lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Removing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Strikethrough(true),

		Icon: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		ToastError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Tokyo Night": tokyoNightTheme(),
	"Nightfox":    nightfoxTheme(),
	"Kanagawa":    kanagawaTheme(),
	"Slate":       slateTheme(),
}

var themeOrder = []string{"Tokyo Night", "Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return tokyoNightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func tokyoNightTheme() Theme {
	// Tokyo Night palette: https://github.com/folke/tokyonight.nvim
	return Theme{
		Name: "Tokyo Night",

		Background: "#13131a",
		Surface:    "#1a1b26", // bg
		SurfaceAlt: "#16161e", // bg_dark

		SelectionBg:   "#292e42", // bg_highlight
		SelectionText: "#c0caf5", // fg

		Border:      "#101014",
		BorderFocus: "#3d59a1",

		Text:    "#a9b1d6", // fg_dark
		Muted:   "#787c99",
		Faint:   "#565f89", // comment
		Accent:  "#7aa2f7", // blue
		Success: "#9ece6a", // green
		Warning: "#e0af68", // yellow
		Danger:  "#f7768e", // red
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
	}
}
