package google

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/logger"
)

// DefaultCalendarID addresses the signed-in user's primary calendar.
const DefaultCalendarID = "primary"

// CalendarAdapter implements the CalendarClient port against the
// Google Calendar v3 API.
type CalendarAdapter struct {
	boot       *Bootstrap
	calendarID string
	timezone   string
	limiter    *RateLimiter
}

var _ driven.CalendarClient = (*CalendarAdapter)(nil)

// NewCalendarAdapter creates a Calendar adapter for one calendar.
// An empty calendarID falls back to the primary calendar.
func NewCalendarAdapter(boot *Bootstrap, calendarID, timezone string) *CalendarAdapter {
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	return &CalendarAdapter{
		boot:       boot,
		calendarID: calendarID,
		timezone:   timezone,
		limiter:    NewRateLimiter(ServiceCalendar),
	}
}

// CreateEvent inserts a timed event and returns it with the provider's
// identifier filled in.
func (a *CalendarAdapter) CreateEvent(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return domain.ScheduleEvent{}, err
	}

	clients, err := a.boot.Clients(ctx)
	if err != nil {
		return domain.ScheduleEvent{}, err
	}

	apiEvent := &calendar.Event{
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Location,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: a.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: a.timezone,
		},
	}

	created, err := clients.Calendar.Events.Insert(a.calendarID, apiEvent).Context(ctx).Do()
	if err != nil {
		return domain.ScheduleEvent{}, wrapError(err)
	}

	logger.Debug("calendar: created event %s (%s)", created.Id, event.Title)
	event.ID = created.Id
	return event, nil
}

// ListWindow fetches events with a start inside [from, to), expanding
// recurring events into instances and ordering by start time. Events
// without a usable start are dropped.
func (a *CalendarAdapter) ListWindow(ctx context.Context, from, to time.Time, max int64) ([]domain.ScheduleEvent, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	clients, err := a.boot.Clients(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := clients.Calendar.Events.List(a.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(max).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}

	events := make([]domain.ScheduleEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		event, ok := eventFromAPI(item)
		if !ok {
			continue
		}
		events = append(events, event)
	}

	logger.Debug("calendar: listed %d events in [%s, %s)",
		len(events), from.Format("2006-01-02"), to.Format("2006-01-02"))
	return events, nil
}

// eventFromAPI maps a provider event to the domain shape. The second
// return is false when the event has no parseable start.
func eventFromAPI(item *calendar.Event) (domain.ScheduleEvent, bool) {
	if item == nil || item.Start == nil {
		return domain.ScheduleEvent{}, false
	}

	start, allDay, err := parseEventTime(item.Start)
	if err != nil {
		return domain.ScheduleEvent{}, false
	}

	event := domain.ScheduleEvent{
		ID:          item.Id,
		Title:       item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Start:       start,
		Date:        start.Format("2006-01-02"),
	}
	if !allDay {
		event.Time = start.Format("15:04")
	}

	if item.End != nil {
		if end, _, endErr := parseEventTime(item.End); endErr == nil {
			event.End = end
		}
	}

	return event, true
}

// parseEventTime reads an EventDateTime, which carries either a
// timestamp or, for all-day events, a bare date.
func parseEventTime(edt *calendar.EventDateTime) (time.Time, bool, error) {
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		return t, false, err
	}
	if edt.Date != "" {
		t, err := time.Parse("2006-01-02", edt.Date)
		return t, true, err
	}
	return time.Time{}, false, fmt.Errorf("event time has neither dateTime nor date")
}
