package driving

import (
	"context"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

// ScheduleService plans studio appointments on the shared calendar.
type ScheduleService interface {
	// Plan validates and creates a fixed one-hour event. A missing
	// time falls back to the configured default before the event is
	// sent; missing title or date fails before any remote call.
	Plan(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error)

	// Month lists the events of the calendar month containing ref,
	// first through last instant in the studio's time zone.
	Month(ctx context.Context, ref time.Time) ([]domain.ScheduleEvent, error)
}
