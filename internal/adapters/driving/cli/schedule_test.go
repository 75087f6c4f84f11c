package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// mockScheduleService implements driving.ScheduleService for testing.
type mockScheduleService struct {
	PlanFunc  func(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error)
	MonthFunc func(ctx context.Context, ref time.Time) ([]domain.ScheduleEvent, error)
}

func (m *mockScheduleService) Plan(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	if m.PlanFunc != nil {
		return m.PlanFunc(ctx, event)
	}
	return event, nil
}

func (m *mockScheduleService) Month(ctx context.Context, ref time.Time) ([]domain.ScheduleEvent, error) {
	if m.MonthFunc != nil {
		return m.MonthFunc(ctx, ref)
	}
	return nil, nil
}

func setupScheduleTest(m *mockScheduleService) func() {
	oldSchedule := scheduleService
	scheduleService = m
	return func() {
		scheduleService = oldSchedule
		scheduleJSON = false
		scheduleAddDate = ""
		scheduleAddTime = ""
		scheduleAddLocation = ""
		scheduleAddDesc = ""
	}
}

func septemberEvents() []domain.ScheduleEvent {
	return []domain.ScheduleEvent{
		{
			ID:       "evt-1",
			Title:    "林公館 丈量",
			Date:     "2026-09-02",
			Time:     "14:00",
			Location: "台北市大安區",
		},
		{
			ID:          "evt-2",
			Title:       "建材挑選",
			Date:        "2026-09-05",
			Time:        "10:00",
			Description: "木地板與塗料樣品",
		},
	}
}

func TestScheduleCmd_Use(t *testing.T) {
	assert.Equal(t, "schedule", scheduleCmd.Use)
}

func TestScheduleCmd_Short(t *testing.T) {
	assert.Equal(t, "Plan appointments on the studio calendar", scheduleCmd.Short)
}

func TestScheduleCmd_Long(t *testing.T) {
	assert.Contains(t, scheduleCmd.Long, "one-hour")
	assert.Contains(t, scheduleCmd.Long, "default start time")
}

func TestScheduleAddCmd_PlansAppointment(t *testing.T) {
	var got domain.ScheduleEvent
	cleanup := setupScheduleTest(&mockScheduleService{
		PlanFunc: func(_ context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
			got = event
			event.ID = "evt-9"
			return event, nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"schedule", "add", "林公館 丈量",
		"--date", "2026-09-02",
		"--time", "14:00",
		"--location", "台北市大安區",
		"--desc", "現場丈量與拍照",
	})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "林公館 丈量", got.Title)
	assert.Equal(t, "2026-09-02", got.Date)
	assert.Equal(t, "14:00", got.Time)
	assert.Equal(t, "台北市大安區", got.Location)
	assert.Equal(t, "現場丈量與拍照", got.Description)
	assert.Contains(t, buf.String(), `Planned "林公館 丈量" on 2026-09-02 at 14:00.`)
}

func TestScheduleAddCmd_WithoutTime(t *testing.T) {
	cleanup := setupScheduleTest(&mockScheduleService{
		PlanFunc: func(_ context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
			// The service fills the studio default when no time is given;
			// here the mock leaves it empty to exercise the shorter line.
			return event, nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schedule", "add", "建材挑選", "--date", "2026-09-05"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `Planned "建材挑選" on 2026-09-05.`)
	assert.NotContains(t, buf.String(), " at ")
}

func TestScheduleAddCmd_Error(t *testing.T) {
	cleanup := setupScheduleTest(&mockScheduleService{
		PlanFunc: func(_ context.Context, _ domain.ScheduleEvent) (domain.ScheduleEvent, error) {
			return domain.ScheduleEvent{}, errors.New("calendar unavailable")
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"schedule", "add", "丈量"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to plan appointment")
}

func TestScheduleMonthCmd_ListsMonth(t *testing.T) {
	var gotRef time.Time
	cleanup := setupScheduleTest(&mockScheduleService{
		MonthFunc: func(_ context.Context, ref time.Time) ([]domain.ScheduleEvent, error) {
			gotRef = ref
			return septemberEvents(), nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schedule", "month", "2026-09"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 2026, gotRef.Year())
	assert.Equal(t, time.September, gotRef.Month())
	output := buf.String()
	assert.Contains(t, output, "Appointments in 2026-09 (2):")
	assert.Contains(t, output, "2026-09-02 14:00  林公館 丈量")
	assert.Contains(t, output, "Location: 台北市大安區")
	assert.Contains(t, output, "2026-09-05 10:00  建材挑選")
	assert.Contains(t, output, "木地板與塗料樣品")
}

func TestScheduleMonthCmd_DefaultsToCurrentMonth(t *testing.T) {
	var gotRef time.Time
	cleanup := setupScheduleTest(&mockScheduleService{
		MonthFunc: func(_ context.Context, ref time.Time) ([]domain.ScheduleEvent, error) {
			gotRef = ref
			return nil, nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schedule", "month"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01"), gotRef.Format("2006-01"))
	assert.Contains(t, buf.String(), "No appointments in "+gotRef.Format("2006-01")+".")
}

func TestScheduleMonthCmd_InvalidMonth(t *testing.T) {
	cleanup := setupScheduleTest(&mockScheduleService{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"schedule", "month", "September"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `invalid month "September", expected YYYY-MM`)
}

func TestScheduleMonthCmd_OutputsJSON(t *testing.T) {
	cleanup := setupScheduleTest(&mockScheduleService{
		MonthFunc: func(_ context.Context, _ time.Time) ([]domain.ScheduleEvent, error) {
			return septemberEvents(), nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schedule", "month", "2026-09", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)

	var decoded []domain.ScheduleEvent
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, "林公館 丈量", decoded[0].Title)
}

func TestScheduleCmd_DefaultsToMonth(t *testing.T) {
	cleanup := setupScheduleTest(&mockScheduleService{
		MonthFunc: func(_ context.Context, _ time.Time) ([]domain.ScheduleEvent, error) {
			return septemberEvents(), nil
		},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"schedule"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Appointments in")
}

func TestScheduleCmd_ServiceNotConfigured(t *testing.T) {
	oldSchedule := scheduleService
	scheduleService = nil
	defer func() {
		scheduleService = oldSchedule
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"schedule", "month"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schedule service not configured")
}
