package service

import (
	"context"

	"sarahkyoga/internal/domain/entity"
)

// CalendarEvent is an event to place on the studio calendar.
type CalendarEvent struct {
	Summary       string
	Description   string
	Slot          entity.TimeRange
	AttendeeEmail string
}

// CreatedEvent identifies an inserted calendar event.
type CreatedEvent struct {
	ID   string
	Link string
}

// CalendarService is the calendar provider.
type CalendarService interface {
	// FreeBusy returns the busy periods within window.
	FreeBusy(ctx context.Context, window entity.TimeRange) ([]entity.TimeRange, error)
	InsertEvent(ctx context.Context, event *CalendarEvent) (*CreatedEvent, error)
}
