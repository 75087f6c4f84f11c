package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/styles"
	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

func sampleEvents() []domain.ScheduleEvent {
	return []domain.ScheduleEvent{
		{ID: "evt-1", Title: "林公館 丈量", Date: "2026-09-02", Time: "10:00", Location: "台北市大安區"},
		{ID: "evt-2", Title: "木質宅 選材會議", Date: "2026-09-10", Time: "14:00"},
		{ID: "evt-3", Title: "老屋翻新 交屋", Date: "2026-09-28"},
	}
}

func TestNewEventList(t *testing.T) {
	s := styles.DefaultStyles()
	list := NewEventList(s)

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
}

func TestNewEventList_NilStyles(t *testing.T) {
	list := NewEventList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
}

func TestEventList_Init(t *testing.T) {
	list := NewEventList(nil)

	cmd := list.Init()

	assert.Nil(t, cmd)
}

func TestEventList_SetEvents(t *testing.T) {
	list := NewEventList(nil)
	events := sampleEvents()

	list.SetEvents(events)

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
}

func TestEventList_Events(t *testing.T) {
	list := NewEventList(nil)
	events := sampleEvents()
	list.SetEvents(events)

	got := list.Events()

	assert.Equal(t, events, got)
}

func TestEventList_Selected(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	assert.Equal(t, 0, list.Selected())

	list.SetSelected(1)
	assert.Equal(t, 1, list.Selected())
}

func TestEventList_SetSelected_OutOfBounds(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	list.SetSelected(99)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestEventList_SetSelected_Negative(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	list.SetSelected(-1)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestEventList_SelectedEvent(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	event := list.SelectedEvent()

	require.NotNil(t, event)
	assert.Equal(t, "林公館 丈量", event.Title)
}

func TestEventList_SelectedEvent_Empty(t *testing.T) {
	list := NewEventList(nil)

	event := list.SelectedEvent()

	assert.Nil(t, event)
}

func TestEventList_MoveUp(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())
	list.SetSelected(1)

	list.MoveUp()

	assert.Equal(t, 0, list.Selected())
}

func TestEventList_MoveUp_AtTop(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	list.MoveUp()

	assert.Equal(t, 0, list.Selected()) // Stays at 0
}

func TestEventList_MoveDown(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	list.MoveDown()

	assert.Equal(t, 1, list.Selected())
}

func TestEventList_MoveDown_AtBottom(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())
	list.SetSelected(2)

	list.MoveDown()

	assert.Equal(t, 2, list.Selected()) // Stays at 2
}

func TestEventList_Update_KeyUp(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())
	list.SetSelected(1)

	msg := tea.KeyMsg{Type: tea.KeyUp}
	updated, cmd := list.Update(msg)

	assert.Equal(t, list, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, list.Selected())
}

func TestEventList_Update_KeyDown(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	msg := tea.KeyMsg{Type: tea.KeyDown}
	updated, cmd := list.Update(msg)

	assert.Equal(t, list, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, list.Selected())
}

func TestEventList_Update_KeyK(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())
	list.SetSelected(1)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	list.Update(msg)

	assert.Equal(t, 0, list.Selected())
}

func TestEventList_Update_KeyJ(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	list.Update(msg)

	assert.Equal(t, 1, list.Selected())
}

func TestEventList_View_Empty(t *testing.T) {
	list := NewEventList(nil)

	view := list.View()

	assert.Contains(t, view, "No appointments")
}

func TestEventList_View_WithEvents(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	view := list.View()

	assert.Contains(t, view, "Appointments (3)")
	assert.Contains(t, view, "林公館 丈量")
	assert.Contains(t, view, "2026-09-02 10:00")
}

func TestEventList_View_SelectedIndicator(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())

	view := list.View()

	assert.Contains(t, view, ">") // Selected indicator
}

func TestEventList_View_Location(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents(sampleEvents())
	list.SetSelected(1) // Move selection off the event with a location

	view := list.View()

	assert.Contains(t, view, "台北市大安區")
}

func TestEventList_SetDimensions(t *testing.T) {
	list := NewEventList(nil)

	list.SetDimensions(100, 20)

	assert.Equal(t, 100, list.Width())
	assert.Equal(t, 20, list.Height())
}

func TestEventList_Width(t *testing.T) {
	list := NewEventList(nil)

	assert.Equal(t, 80, list.Width()) // Default
}

func TestEventList_Height(t *testing.T) {
	list := NewEventList(nil)

	assert.Equal(t, 10, list.Height()) // Default
}

func TestEventList_Count(t *testing.T) {
	list := NewEventList(nil)

	assert.Equal(t, 0, list.Count())

	list.SetEvents(sampleEvents())
	assert.Equal(t, 3, list.Count())
}

func TestEventList_IsEmpty(t *testing.T) {
	list := NewEventList(nil)

	assert.True(t, list.IsEmpty())

	list.SetEvents(sampleEvents())
	assert.False(t, list.IsEmpty())
}

func TestEventList_View_UntitledEvent(t *testing.T) {
	list := NewEventList(nil)
	list.SetEvents([]domain.ScheduleEvent{
		{ID: "evt-1", Title: "", Date: "2026-09-02"},
	})

	view := list.View()

	assert.Contains(t, view, "(Untitled)")
}

func TestEventList_View_LongTitle(t *testing.T) {
	list := NewEventList(nil)
	longTitle := "A very long appointment title that should be truncated when displayed in the list view"
	list.SetEvents([]domain.ScheduleEvent{
		{ID: "evt-1", Title: longTitle, Date: "2026-09-02"},
	})

	view := list.View()

	// Should be truncated with ellipsis
	assert.Contains(t, view, "...")
}
