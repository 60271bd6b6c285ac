package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the stats panel. The fractal itself always uses the
// configured palette.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeInferno = Theme{
		Name:      "inferno",
		Primary:   lipgloss.Color("#ffb000"),
		Secondary: lipgloss.Color("#ff5e3a"),
		Accent:    lipgloss.Color("#ffe08a"),
		Text:      lipgloss.Color("#f5f0e6"),
		Muted:     lipgloss.Color("#7a6a5a"),
		Warning:   lipgloss.Color("#ff3030"),
	}

	ThemeAbyss = Theme{
		Name:      "abyss",
		Primary:   lipgloss.Color("#20a4f3"),
		Secondary: lipgloss.Color("#2ec4b6"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#999999"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#666666"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	CurrentTheme = ThemeInferno

	Themes = []Theme{ThemeInferno, ThemeAbyss, ThemeMono, ThemePhosphor}
)

func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeInferno
}

func SetTheme(name string) { CurrentTheme = GetTheme(name) }

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) header() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1)
}

func (t Theme) label() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Width(10)
}

func (t Theme) value() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t Theme) graph() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0)
}

func (t Theme) help() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1)
}

func (t Theme) status(running bool) lipgloss.Style {
	if running {
		return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
}
