// Package styles provides the console's colour theme and lipgloss styles.
//
// The palette leans on the studio's material language: wood, sage,
// stone and terracotta on a dark walnut surface.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	Primary    lipgloss.Color // main accent
	Secondary  lipgloss.Color // secondary accent
	Background lipgloss.Color
	Surface    lipgloss.Color // raised panels, the status bar
	Foreground lipgloss.Color // default text
	Muted      lipgloss.Color // de-emphasised text
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#B08B57"), // Warm wood
		Secondary:  lipgloss.Color("#7E9680"), // Sage green
		Background: lipgloss.Color("#262220"), // Dark walnut
		Surface:    lipgloss.Color("#1C1917"), // Charcoal panel
		Foreground: lipgloss.Color("#EDE7DC"), // Warm off-white
		Muted:      lipgloss.Color("#8C8376"), // Stone gray
		Success:    lipgloss.Color("#A6C39A"), // Moss green
		Warning:    lipgloss.Color("#D9B979"), // Ochre
		Error:      lipgloss.Color("#C98078"), // Terracotta
		Border:     lipgloss.Color("#4C443C"), // Border umber
	}
}

// Styles holds the lipgloss styles views render with, all derived
// from one Theme so the console stays visually consistent.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style // bold primary headers
	Subtitle   lipgloss.Style // secondary headers
	Normal     lipgloss.Style // body text
	Muted      lipgloss.Style // de-emphasised text
	Selected   lipgloss.Style // highlighted list rows
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style // bordered input areas
	StatusBar  lipgloss.Style
	Help       lipgloss.Style // footer key hints
	Border     lipgloss.Style // rounded containers
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Surface).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
