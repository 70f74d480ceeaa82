// Package calendar implements the domain CalendarService on Google Calendar.
package calendar

import (
	"context"
	"log/slog"
	"time"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/service"

	"github.com/pkg/errors"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type googleCalendar struct {
	api        *gcal.Service
	calendarID string
	timeZone   string
	logger     *slog.Logger
}

// NewGoogleCalendar creates a CalendarService for the configured calendar
func NewGoogleCalendar(ctx context.Context, cfg *config.CalendarConfig, logger *slog.Logger) (service.CalendarService, error) {
	opts := []option.ClientOption{option.WithScopes(gcal.CalendarScope)}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	return newGoogleCalendar(ctx, cfg.CalendarID, cfg.TimeZone, logger, opts...)
}

func newGoogleCalendar(ctx context.Context, calendarID, timeZone string, logger *slog.Logger, opts ...option.ClientOption) (*googleCalendar, error) {
	if calendarID == "" {
		return nil, errors.New("calendar ID is required")
	}

	api, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calendar client")
	}

	return &googleCalendar{
		api:        api,
		calendarID: calendarID,
		timeZone:   timeZone,
		logger:     logger,
	}, nil
}

// FreeBusy returns the busy periods of the studio calendar within window
func (c *googleCalendar) FreeBusy(ctx context.Context, window entity.TimeRange) ([]entity.TimeRange, error) {
	resp, err := c.api.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin:  window.Start.Format(time.RFC3339),
		TimeMax:  window.End.Format(time.RFC3339),
		TimeZone: c.timeZone,
		Items:    []*gcal.FreeBusyRequestItem{{Id: c.calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "calendar freebusy query")
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, nil
	}
	if len(cal.Errors) > 0 {
		return nil, errors.Errorf("calendar freebusy error: %s", cal.Errors[0].Reason)
	}

	busy := make([]entity.TimeRange, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, errors.Wrapf(err, "parse busy start %q", period.Start)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, errors.Wrapf(err, "parse busy end %q", period.End)
		}
		busy = append(busy, entity.TimeRange{Start: start, End: end})
	}

	return busy, nil
}

// InsertEvent places a booking on the studio calendar and invites the attendee
func (c *googleCalendar) InsertEvent(ctx context.Context, event *service.CalendarEvent) (*service.CreatedEvent, error) {
	calEvent := &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &gcal.EventDateTime{
			DateTime: event.Slot.Start.Format(time.RFC3339),
			TimeZone: c.timeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: event.Slot.End.Format(time.RFC3339),
			TimeZone: c.timeZone,
		},
	}
	if event.AttendeeEmail != "" {
		calEvent.Attendees = []*gcal.EventAttendee{{Email: event.AttendeeEmail}}
	}

	created, err := c.api.Events.Insert(c.calendarID, calEvent).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "calendar event insert")
	}

	c.logger.Info("Calendar event created",
		slog.String("event_id", created.Id),
		slog.String("start", calEvent.Start.DateTime),
	)

	return &service.CreatedEvent{ID: created.Id, Link: created.HtmlLink}, nil
}
