package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiangteng007/senteng-design-system/internal/adapters/driving/tui/styles"
)

func TestNewFieldInput(t *testing.T) {
	s := styles.DefaultStyles()
	input := NewFieldInput(s, "Spreadsheet ID")

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.Equal(t, "Spreadsheet ID", input.Label())
	assert.True(t, input.Focused())
}

func TestNewFieldInput_NilStyles(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestFieldInput_Init(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	cmd := input.Init()

	// Blink command should be returned
	assert.NotNil(t, cmd)
}

func TestFieldInput_Update(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	updated, cmd := input.Update(msg)

	assert.Equal(t, input, updated)
	// textinput returns nil cmd for regular key presses
	_ = cmd
	assert.Equal(t, "a", input.Value())
}

func TestFieldInput_View(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	view := input.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Spreadsheet ID")
}

func TestFieldInput_SetLabel(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	input.SetLabel("Calendar ID")

	assert.Equal(t, "Calendar ID", input.Label())
	assert.Contains(t, input.View(), "Calendar ID")
}

func TestFieldInput_SetValue(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	input.SetValue("1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms")

	assert.Equal(t, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", input.Value())
}

func TestFieldInput_Focus(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")
	input.Blur()

	assert.False(t, input.Focused())

	cmd := input.Focus()

	assert.NotNil(t, cmd)
	assert.True(t, input.Focused())
}

func TestFieldInput_Blur(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	assert.True(t, input.Focused())

	input.Blur()

	assert.False(t, input.Focused())
}

func TestFieldInput_SetWidth(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	input.SetWidth(100)

	assert.Equal(t, 100, input.Width())
}

func TestFieldInput_SetWidth_Minimum(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	input.SetWidth(10) // Very small, should use minimum

	assert.Equal(t, 10, input.Width())
	// Internal textinput width should be at least 20
}

func TestFieldInput_Width(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	assert.Equal(t, 50, input.Width()) // Default width
}

func TestFieldInput_Reset(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")
	input.SetValue("some text")

	input.Reset()

	assert.Equal(t, "", input.Value())
}

func TestFieldInput_Update_MultipleKeys(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")

	keys := []rune{'s', 'h', 'e', 'e', 't'}
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k}}
		input.Update(msg)
	}

	assert.Equal(t, "sheet", input.Value())
}

func TestFieldInput_Update_Backspace(t *testing.T) {
	input := NewFieldInput(nil, "Spreadsheet ID")
	input.SetValue("test")

	msg := tea.KeyMsg{Type: tea.KeyBackspace}
	input.Update(msg)

	assert.Equal(t, "tes", input.Value())
}
