package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sarahkyoga/config"
	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/usecase"
	"sarahkyoga/internal/util"

	"go.uber.org/fx"
)

// maxAvailabilityWindow bounds a single free/busy query.
const maxAvailabilityWindow = 62 * 24 * time.Hour

// bookingService implements the BookingUsecase interface. The calendar is optional.
type bookingService struct {
	calendar    service.CalendarService
	emailSender service.EmailSender
	location    *time.Location
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	Calendar    service.CalendarService `optional:"true"`
	EmailSender service.EmailSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	location := time.UTC
	if params.Config != nil && params.Config.Calendar != nil {
		if loc, err := time.LoadLocation(params.Config.Calendar.TimeZone); err == nil {
			location = loc
		}
	}

	return &bookingService{
		calendar:    params.Calendar,
		emailSender: params.EmailSender,
		location:    location,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Availability returns the busy periods in the window.
func (srv *bookingService) Availability(ctx context.Context, window entity.TimeRange) ([]entity.TimeRange, error) {
	if srv.calendar == nil {
		return nil, domainerrors.ErrCalendarDisabled.WrapMessage("availability unavailable")
	}
	if err := validateWindow(window); err != nil {
		return nil, err
	}
	if window.End.Sub(window.Start) > maxAvailabilityWindow {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("availability window is too long")
	}

	busy, err := srv.calendar.FreeBusy(ctx, window)
	if err != nil {
		srv.log(ctx).Error("Free/busy query failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("calendar query failed")
	}

	return busy, nil
}

// Book places the session on the calendar when the slot is free and emails the attendee.
func (srv *bookingService) Book(ctx context.Context, input *usecase.BookingInput) (*entity.Booking, error) {
	if srv.calendar == nil {
		return nil, domainerrors.ErrCalendarDisabled.WrapMessage("booking unavailable")
	}
	if err := validateWindow(input.Slot); err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)
	if email == "" || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and email are required")
	}

	busy, err := srv.calendar.FreeBusy(ctx, input.Slot)
	if err != nil {
		srv.log(ctx).Error("Free/busy query failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("calendar query failed")
	}
	for _, period := range busy {
		if period.Overlaps(input.Slot) {
			return nil, domainerrors.ErrSlotUnavailable.WrapMessage(input.Slot.Start.Format(time.RFC3339))
		}
	}

	booking := &entity.Booking{
		Slot:  input.Slot,
		Name:  strings.TrimSpace(input.Name),
		Email: email,
		Phone: strings.TrimSpace(input.Phone),
		Notes: input.Notes,
	}

	created, err := srv.calendar.InsertEvent(ctx, &service.CalendarEvent{
		Summary:       "Private session: " + booking.Name,
		Description:   bookingDescription(booking),
		Slot:          booking.Slot,
		AttendeeEmail: booking.Email,
	})
	if err != nil {
		srv.log(ctx).Error("Calendar insert failed", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("failed to create calendar event")
	}
	booking.EventID = created.ID
	booking.Link = created.Link
	srv.log(ctx).Info("Booking created", slog.String("eventID", booking.EventID))

	if err := srv.emailSender.Send(ctx, srv.confirmation(booking)); err != nil {
		srv.log(ctx).Warn("Failed to send booking confirmation", slog.Any("error", err))
	}

	return booking, nil
}

func (srv *bookingService) confirmation(booking *entity.Booking) *service.EmailMessage {
	start := booking.Slot.Start.In(srv.location)
	when := start.Format("Monday, January 2 at 3:04 PM MST")
	duration := util.FormatDuration(booking.Slot.End.Sub(booking.Slot.Start))

	return &service.EmailMessage{
		To:      booking.Email,
		Subject: "Your private session is booked",
		Text:    fmt.Sprintf("Hi %s,\n\nYour private session is booked for %s (%s).\n", booking.Name, when, duration),
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>Your private session is booked for <strong>%s</strong> (%s).</p>", booking.Name, when, duration),
	}
}

func bookingDescription(booking *entity.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\nEmail: %s\n", booking.Name, booking.Email)
	if booking.Phone != "" {
		fmt.Fprintf(&sb, "Phone: %s\n", booking.Phone)
	}
	if booking.Notes != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", booking.Notes)
	}

	return sb.String()
}

func validateWindow(window entity.TimeRange) error {
	if window.Start.IsZero() || !window.End.After(window.Start) {
		return domainerrors.ErrValidationFailed.WrapMessage("time range must end after it starts")
	}

	return nil
}
