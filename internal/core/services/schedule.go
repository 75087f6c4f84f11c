package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driven"
	"github.com/xiangteng007/senteng-design-system/internal/core/ports/driving"
)

// Scheduling defaults. The studio plans in Taipei time; events without
// a time land on the morning slot.
const (
	DefaultEventTime  = "09:00"
	DefaultTimeZone   = "Asia/Taipei"
	DefaultMonthLimit = 100
)

// Ensure ScheduleService implements the interface.
var _ driving.ScheduleService = (*ScheduleService)(nil)

// ScheduleOptions configure the schedule service.
// Zero values fall back to the studio defaults.
type ScheduleOptions struct {
	// Zone is the IANA time zone events are planned in.
	Zone string
	// DefaultTime substitutes a missing event time (HH:MM).
	DefaultTime string
	// MonthLimit caps how many events a month listing returns.
	MonthLimit int64
}

// ScheduleService plans studio appointments on the shared calendar.
type ScheduleService struct {
	calendar    driven.CalendarClient
	zone        string
	defaultTime string
	monthLimit  int64
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(calendar driven.CalendarClient, opts ScheduleOptions) *ScheduleService {
	if opts.Zone == "" {
		opts.Zone = DefaultTimeZone
	}
	if opts.DefaultTime == "" {
		opts.DefaultTime = DefaultEventTime
	}
	if opts.MonthLimit <= 0 {
		opts.MonthLimit = DefaultMonthLimit
	}
	return &ScheduleService{
		calendar:    calendar,
		zone:        opts.Zone,
		defaultTime: opts.DefaultTime,
		monthLimit:  opts.MonthLimit,
	}
}

// Plan validates and creates a fixed one-hour event.
// Validation failures happen before any remote call.
func (s *ScheduleService) Plan(ctx context.Context, event domain.ScheduleEvent) (domain.ScheduleEvent, error) {
	if s.calendar == nil {
		return domain.ScheduleEvent{}, domain.ErrNotImplemented
	}
	if err := event.Validate(); err != nil {
		return domain.ScheduleEvent{}, err
	}

	start, err := s.resolveStart(event)
	if err != nil {
		return domain.ScheduleEvent{}, err
	}
	event.Start = start
	event.End = start.Add(time.Hour)

	created, err := s.calendar.CreateEvent(ctx, event)
	if err != nil {
		return domain.ScheduleEvent{}, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

// Month lists the events of the calendar month containing ref.
// The window runs from the first instant of the month up to (and
// excluding) the first instant of the next.
func (s *ScheduleService) Month(ctx context.Context, ref time.Time) ([]domain.ScheduleEvent, error) {
	if s.calendar == nil {
		return nil, domain.ErrNotImplemented
	}
	loc, err := time.LoadLocation(s.zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", s.zone, err)
	}

	local := ref.In(loc)
	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	events, err := s.calendar.ListWindow(ctx, first, next, s.monthLimit)
	if err != nil {
		return nil, fmt.Errorf("list month: %w", err)
	}
	return events, nil
}

// resolveStart computes the event's start instant from its date, its
// optional time and the configured zone.
func (s *ScheduleService) resolveStart(event domain.ScheduleEvent) (time.Time, error) {
	loc, err := time.LoadLocation(s.zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load zone %q: %w", s.zone, err)
	}

	clock := strings.TrimSpace(event.Time)
	if clock == "" {
		clock = s.defaultTime
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", event.Date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date or time: %v", domain.ErrInvalidInput, err)
	}
	return start, nil
}
