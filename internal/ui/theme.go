package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/panesplit/internal/splitter"
)

// Theme is a named palette for the host chrome and the splitter.
type Theme struct {
	Name string

	Background string
	Surface    string
	SurfaceAlt string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for a theme.
type Styles struct {
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	PaneTitle   lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		PaneTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// SplitterStyles returns divider and pane styles for this theme.
func (t Theme) SplitterStyles() splitter.Styles {
	return splitter.Styles{
		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),
		DividerFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BorderFocus)).
			Bold(true),
		DividerActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Warning)).
			Bold(true),
		Pane: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Text)),
	}
}

// HelpStyles returns footer help styles for this theme.
func (t Theme) HelpStyles() help.Styles {
	s := help.New().Styles
	s.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning))
	s.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	s.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	s.FullKey = s.ShortKey
	s.FullDesc = s.ShortDesc
	s.FullSeparator = s.ShortSeparator
	return s
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
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

func nightfoxTheme() Theme {
	// https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:        "Nightfox",
		Background:  "#131a24", // bg0
		Surface:     "#192330", // bg1
		SurfaceAlt:  "#212e3f", // bg2
		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue
		Text:        "#cdcecf", // fg1
		Muted:       "#738091", // comment
		Faint:       "#71839b", // fg3
		Accent:      "#719cd6", // blue
		Warning:     "#dbc074", // yellow
		Danger:      "#c94f6d", // red
	}
}

func kanagawaTheme() Theme {
	// https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:        "Kanagawa",
		Background:  "#16161D", // sumiInk0
		Surface:     "#1F1F28", // sumiInk3
		SurfaceAlt:  "#2A2A37", // sumiInk4
		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue
		Text:        "#DCD7BA", // fujiWhite
		Muted:       "#C8C093", // oldWhite
		Faint:       "#727169", // fujiGray
		Accent:      "#7E9CD8", // crystalBlue
		Warning:     "#E6C384", // carpYellow
		Danger:      "#E46876", // waveRed
	}
}

func slateTheme() Theme {
	// Tailwind slate/sky
	return Theme{
		Name:        "Slate",
		Background:  "#020617", // slate-950
		Surface:     "#0f172a", // slate-900
		SurfaceAlt:  "#1e293b", // slate-800
		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400
		Text:        "#f1f5f9", // slate-100
		Muted:       "#94a3b8", // slate-400
		Faint:       "#64748b", // slate-500
		Accent:      "#38bdf8", // sky-400
		Warning:     "#f59e0b", // amber-500
		Danger:      "#ef4444", // red-500
	}
}
