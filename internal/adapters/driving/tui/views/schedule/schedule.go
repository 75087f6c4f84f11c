// Package schedule provides the month schedule view for the TUI.
package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/components/list"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/messages"
	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/styles"
	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// View is the month schedule view.
type View struct {
	styles          *styles.Styles
	scheduleService driving.ScheduleService

	month   time.Time // first day of the displayed month
	list    *list.EventList
	width   int
	height  int
	ready   bool
	err     error
	loading bool
}

// NewView creates a new schedule view showing the current month.
func NewView(s *styles.Styles, scheduleService driving.ScheduleService) *View {
	now := time.Now()
	return &View{
		styles:          s,
		scheduleService: scheduleService,
		month:           time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		list:            list.NewEventList(s),
	}
}

// Init initialises the view and loads the current month.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadMonth()
}

// loadMonth returns a command that loads the displayed month's events.
func (v *View) loadMonth() tea.Cmd {
	month := v.month
	return func() tea.Msg {
		key := month.Format("2006-01")
		if v.scheduleService == nil {
			return messages.ScheduleLoaded{Month: key, Err: fmt.Errorf("schedule service not available")}
		}

		events, err := v.scheduleService.Month(context.Background(), month)
		if err != nil {
			return messages.ScheduleLoaded{Month: key, Err: err}
		}

		return messages.ScheduleLoaded{Month: key, Events: events, Err: nil}
	}
}

// Update handles messages for the schedule view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.list.SetDimensions(msg.Width, msg.Height-8)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ScheduleLoaded:
		// Ignore results for a month no longer displayed
		if msg.Month != v.month.Format("2006-01") {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.list.SetEvents(msg.Events)
			v.err = nil
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		v.month = v.month.AddDate(0, -1, 0)
		v.loading = true
		return v, v.loadMonth()

	case "right", "l":
		v.month = v.month.AddDate(0, 1, 0)
		v.loading = true
		return v, v.loadMonth()

	case "r":
		v.loading = true
		return v, v.loadMonth()

	default:
		// List navigation
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}
}

// View renders the schedule view.
func (v *View) View() string {
	var b strings.Builder

	// Title with the displayed month
	b.WriteString(v.styles.Title.Render("Schedule"))
	b.WriteString("  ")
	b.WriteString(v.styles.Subtitle.Render(v.month.Format("2006-01")))
	b.WriteString("\n\n")

	// Loading state
	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading appointments..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Event list (renders its own empty state)
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[h/l] change month  [r] reload  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-8)
}

// Month returns the first day of the displayed month.
func (v *View) Month() time.Time {
	return v.month
}

// Events returns the currently displayed events.
func (v *View) Events() []domain.ScheduleEvent {
	return v.list.Events()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
