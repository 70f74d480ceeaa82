package calendar

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

func newTestCalendar(t *testing.T, handler http.HandlerFunc) *googleCalendar {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cal, err := newGoogleCalendar(context.Background(), "studio@example.com", "America/New_York",
		slog.New(slog.DiscardHandler),
		option.WithEndpoint(server.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	return cal
}

func TestGoogleCalendar_FreeBusy(t *testing.T) {
	var req gcal.FreeBusyRequest
	cal := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/freeBusy", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"calendars":{"studio@example.com":{"busy":[{"start":"2026-06-01T14:00:00Z","end":"2026-06-01T15:00:00Z"}]}}}`)
	})

	window := entity.TimeRange{
		Start: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
	}
	busy, err := cal.FreeBusy(context.Background(), window)
	require.NoError(t, err)

	assert.Equal(t, "2026-06-01T00:00:00Z", req.TimeMin)
	require.Len(t, req.Items, 1)
	assert.Equal(t, "studio@example.com", req.Items[0].Id)
	require.Len(t, busy, 1)
	assert.Equal(t, 14, busy[0].Start.Hour())
	assert.Equal(t, time.Hour, busy[0].End.Sub(busy[0].Start))
}

func TestGoogleCalendar_InsertEvent(t *testing.T) {
	var got gcal.Event
	cal := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/studio@example.com/events", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"evt_1","htmlLink":"https://calendar.test/evt_1"}`)
	})

	start := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	created, err := cal.InsertEvent(context.Background(), &service.CalendarEvent{
		Summary:       "Private session",
		Slot:          entity.TimeRange{Start: start, End: start.Add(time.Hour)},
		AttendeeEmail: "student@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "evt_1", created.ID)
	assert.Equal(t, "https://calendar.test/evt_1", created.Link)
	assert.Equal(t, "Private session", got.Summary)
	assert.Equal(t, "America/New_York", got.Start.TimeZone)
	require.Len(t, got.Attendees, 1)
	assert.Equal(t, "student@example.com", got.Attendees[0].Email)
}

func TestGoogleCalendar_UpstreamError(t *testing.T) {
	cal := newTestCalendar(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := cal.FreeBusy(context.Background(), entity.TimeRange{Start: time.Now(), End: time.Now().Add(time.Hour)})
	assert.Error(t, err)
}
