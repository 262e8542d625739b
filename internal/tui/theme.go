package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Clock         lipgloss.Style
	ClockPulse    lipgloss.Style
	ClockFlash    lipgloss.Style
	Label         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	InputDisabled lipgloss.Style
	Running       lipgloss.Style
	Paused        lipgloss.Style
	Expired       lipgloss.Style
	Error         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		ClockPulse:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		ClockFlash:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Bold(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		InputDisabled: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("236")).Foreground(lipgloss.Color("240")).Padding(0, 1),
		Running:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Paused:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Expired:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),                                             // Purple
		Clock:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true), // White
		ClockPulse:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		ClockFlash:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("203")).Bold(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true), // Cyan
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		InputDisabled: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("237")).Foreground(lipgloss.Color("60")).Padding(0, 1),
		Running:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Paused:        lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Expired:       lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Red/Pink
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
	"mono": {
		Name:          "Mono",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("250"),
		Clock:         lipgloss.NewStyle().Bold(true),
		ClockPulse:    lipgloss.NewStyle().Bold(true).Underline(true),
		ClockFlash:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Label:         lipgloss.NewStyle().Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1),
		InputDisabled: lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Faint(true).Padding(0, 1),
		Running:       lipgloss.NewStyle().Bold(true),
		Paused:        lipgloss.NewStyle().Italic(true),
		Expired:       lipgloss.NewStyle().Bold(true).Reverse(true),
		Error:         lipgloss.NewStyle().Underline(true),
		Focused:       lipgloss.NewStyle().Bold(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Highlight:     lipgloss.NewStyle().Underline(true),
	},
}

// ResolveTheme falls back to the default theme for unknown names.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// ThemeNames lists theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
