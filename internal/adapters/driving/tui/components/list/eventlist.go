// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/styles"
	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// EventList displays calendar events in a navigable list.
type EventList struct {
	events   []domain.ScheduleEvent
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewEventList creates a new event list component.
func NewEventList(s *styles.Styles) *EventList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &EventList{
		events:   nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the event list.
func (l *EventList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *EventList) Update(msg tea.Msg) (*EventList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the event list.
func (l *EventList) View() string {
	if len(l.events) == 0 {
		return l.styles.Muted.Render("No appointments")
	}

	lines := make([]string, 0, len(l.events)*2+2)

	// Header
	header := l.styles.Subtitle.Render(fmt.Sprintf("Appointments (%d)", len(l.events)))
	lines = append(lines, header, "")

	// Calculate visible range based on height
	// Each event takes 1-2 lines (title + optional detail), so divide by 2
	visibleCount := (l.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.events) {
		end = len(l.events)
	}

	for i := start; i < end; i++ {
		line := l.renderEvent(i, &l.events[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderEvent formats a single event with its date and optional detail.
func (l *EventList) renderEvent(index int, event *domain.ScheduleEvent) string {
	// Indicator for selected item
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := event.Title
	if title == "" {
		title = "(Untitled)"
	}

	when := event.Date
	if event.Time != "" {
		when += " " + event.Time
	}

	// Truncate title if too long. Rune-based because titles are
	// frequently Chinese.
	maxTitleLen := l.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if runes := []rune(title); len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen-3]) + "..."
	}

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(fmt.Sprintf("%s%s  %s", indicator, when, title))
	} else {
		titleLine = l.styles.Muted.Render(indicator+when) +
			l.styles.Normal.Render("  "+title)
	}

	// Detail line: location if present, otherwise description
	detail := event.Location
	if detail == "" {
		detail = event.Description
	}
	if detail == "" {
		return titleLine
	}

	maxDetailLen := l.width - 6
	if maxDetailLen < 20 {
		maxDetailLen = 20
	}
	if runes := []rune(detail); len(runes) > maxDetailLen {
		detail = string(runes[:maxDetailLen-3]) + "..."
	}

	return titleLine + "\n" + l.styles.Muted.Render("    "+detail)
}

// SetEvents updates the event list.
func (l *EventList) SetEvents(events []domain.ScheduleEvent) {
	l.events = events
	l.selected = 0
}

// Events returns the current events.
func (l *EventList) Events() []domain.ScheduleEvent {
	return l.events
}

// Selected returns the index of the selected event.
func (l *EventList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *EventList) SetSelected(index int) {
	if index >= 0 && index < len(l.events) {
		l.selected = index
	}
}

// SelectedEvent returns the currently selected event, or nil if none.
func (l *EventList) SelectedEvent() *domain.ScheduleEvent {
	if len(l.events) == 0 || l.selected < 0 || l.selected >= len(l.events) {
		return nil
	}
	return &l.events[l.selected]
}

// MoveUp moves selection up.
func (l *EventList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *EventList) MoveDown() {
	if l.selected < len(l.events)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *EventList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *EventList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *EventList) Height() int {
	return l.height
}

// Count returns the number of events.
func (l *EventList) Count() int {
	return len(l.events)
}

// IsEmpty returns whether the list is empty.
func (l *EventList) IsEmpty() bool {
	return len(l.events) == 0
}
