// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/components/input"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/messages"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/styles"
	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionSpreadsheet
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings *domain.AppSettings
	err      error

	// Navigation state
	section  Section
	selected int // selection within the overview

	// Text input for the spreadsheet ID
	spreadsheetInput *input.FieldInput

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	spreadsheetInput := input.NewFieldInput(s, "Spreadsheet ID")
	spreadsheetInput.SetPlaceholder("Paste the ID from the sheet URL")
	spreadsheetInput.Blur()

	return &View{
		styles:           s,
		settingsService:  settingsService,
		section:          SectionOverview,
		spreadsheetInput: spreadsheetInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.spreadsheetInput.SetWidth(msg.Width)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.err = nil
			// Reload settings after save
			cmd := v.loadSettings()
			return v, cmd
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Global escape to go back
	if msg.String() == "esc" {
		switch v.section {
		case SectionOverview:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		default:
			v.section = SectionOverview
			v.selected = 0
			v.spreadsheetInput.Blur()
			return v, nil
		}
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionSpreadsheet:
		return v.handleSpreadsheetKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Overview menu: Project Database, Demo Mode
	maxItems := 2

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < maxItems-1 {
			v.selected++
		}
	case keyEnter:
		switch v.selected {
		case 0:
			v.section = SectionSpreadsheet
			if v.settings != nil {
				v.spreadsheetInput.SetValue(v.settings.Sheets.SpreadsheetID)
			}
			cmd := v.spreadsheetInput.Focus()
			return v, cmd
		case 1:
			cmd := v.toggleDemoMode()
			return v, cmd
		}
	}
	return v, nil
}

func (v *View) handleSpreadsheetKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyEnter:
		cmd := v.setSpreadsheet(v.spreadsheetInput.Value())
		return v, cmd
	default:
		var cmd tea.Cmd
		v.spreadsheetInput, cmd = v.spreadsheetInput.Update(msg)
		return v, cmd
	}
}

// Commands to update settings.

func (v *View) setSpreadsheet(id string) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		sheet := ""
		if v.settings != nil {
			sheet = v.settings.Sheets.ProjectsSheet
		}
		err := v.settingsService.SetSpreadsheet(strings.TrimSpace(id), sheet)
		if err == nil {
			v.section = SectionOverview
			v.selected = 0
			v.spreadsheetInput.Reset()
			v.spreadsheetInput.Blur()
		}
		return messages.SettingsSaved{Err: err}
	}
}

func (v *View) toggleDemoMode() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		enabled := false
		if v.settings != nil {
			enabled = v.settings.DemoMode
		}
		err := v.settingsService.SetDemoMode(!enabled)
		return messages.SettingsSaved{Err: err}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	// Error display
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	// Loading state
	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionSpreadsheet:
		b.WriteString(v.renderSpreadsheetEdit())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	spreadsheetValue := "Not Set"
	if v.settings.Sheets.SpreadsheetID != "" {
		spreadsheetValue = fmt.Sprintf("%s (%s)", v.settings.Sheets.SpreadsheetID, v.settings.Sheets.ProjectsSheet)
	}

	demoValue := "Off"
	if v.settings.DemoMode {
		demoValue = "On"
	}

	items := []struct {
		label  string
		value  string
		status string
	}{
		{
			label:  "Project Database",
			value:  spreadsheetValue,
			status: v.getSpreadsheetStatus(),
		},
		{
			label: "Demo Mode",
			value: demoValue,
		},
	}

	for i, item := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s: %s", indicator, item.label, item.value)
		if item.status != "" {
			line += " " + item.status
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	// Read-only summary of the rest of the configuration
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Calendar: %s (%s)", v.settings.Calendar.ID, v.settings.Calendar.TimeZone)))
	b.WriteString("\n")
	if v.settings.Google.IsConfigured() {
		b.WriteString(v.styles.Success.Render("Google sign-in is configured"))
	} else {
		b.WriteString(v.styles.Warning.Render("Warning: Google client ID is not set; sign-in is unavailable"))
	}

	return b.String()
}

func (v *View) getSpreadsheetStatus() string {
	if v.settings.Sheets.SpreadsheetID != "" {
		return v.styles.Success.Render("[configured]")
	}
	return v.styles.Warning.Render("[not set]")
}

func (v *View) renderSpreadsheetEdit() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Project Database"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("The spreadsheet ID is the long token in the sheet's URL."))
	b.WriteString("\n\n")
	b.WriteString(v.spreadsheetInput.View())
	b.WriteString("\n")

	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit/toggle  [esc] back")
	case SectionSpreadsheet:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.err = nil
	v.spreadsheetInput.Reset()
	v.spreadsheetInput.Blur()
}
