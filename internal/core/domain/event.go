package domain

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleEvent is a calendar event planned by the studio, such as a
// site measurement or a client handover. Events are created and
// listed; this application never updates or deletes them.
type ScheduleEvent struct {
	// ID is the provider-issued identifier. Empty before creation.
	ID string `json:"id,omitempty"`

	// Title is the event summary. Required.
	Title string `json:"title"`

	// Date is the calendar date in YYYY-MM-DD form. Required.
	Date string `json:"date"`

	// Time is the local wall-clock start in HH:MM form. Optional; the
	// schedule service substitutes the configured fallback time.
	Time string `json:"time,omitempty"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Location is optional free text.
	Location string `json:"location,omitempty"`

	// Start and End are the resolved instants, populated on listing
	// and after creation.
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// Validate checks the fields required before any remote call is made.
func (e ScheduleEvent) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(e.Date) == "" {
		return fmt.Errorf("%w: event date is required", ErrInvalidInput)
	}
	return nil
}
