package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
)

// Ensure Calendar implements the interface.
var _ driven.CalendarClient = (*Calendar)(nil)

// Calendar is an in-memory implementation of driven.CalendarClient.
type Calendar struct {
	mu     sync.Mutex
	nextID int
	events []domain.ScheduleEvent
}

// NewCalendar creates a new in-memory calendar.
func NewCalendar() *Calendar {
	return &Calendar{}
}

// CreateEvent stores the event and assigns it an identifier.
func (c *Calendar) CreateEvent(_ context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	event.ID = fmt.Sprintf("evt-%d", c.nextID)
	c.events = append(c.events, event)
	return event, nil
}

// ListWindow returns stored events inside [from, to), ordered by
// start time and capped at max results.
func (c *Calendar) ListWindow(_ context.Context, from, to time.Time, max int64) ([]domain.ScheduleEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []domain.ScheduleEvent
	for _, event := range c.events {
		if event.Start.IsZero() {
			continue
		}
		if event.Start.Before(from) || !event.Start.Before(to) {
			continue
		}
		result = append(result, event)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})
	if max > 0 && int64(len(result)) > max {
		result = result[:max]
	}
	return result, nil
}
