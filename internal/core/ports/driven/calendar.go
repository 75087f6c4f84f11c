package driven

import (
	"context"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// CalendarClient creates and lists events on the studio calendar.
// Start/end instants are resolved by the schedule service before the
// client is called; the client never applies scheduling defaults.
type CalendarClient interface {
	// CreateEvent inserts the event. Start and End must be set; the
	// returned event carries the provider-issued ID.
	CreateEvent(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error)

	// ListWindow returns events between from and to, recurring events
	// expanded into individual instances, ordered by start time and
	// capped at max results. Events without a usable start are
	// filtered out.
	ListWindow(ctx context.Context, from, to time.Time, max int64) ([]domain.ScheduleEvent, error)
}
