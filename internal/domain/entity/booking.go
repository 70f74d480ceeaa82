package entity

import "time"

// TimeRange is a half-open interval [Start, End).
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the two ranges share any instant.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Booking is a private session request placed on the studio calendar.
type Booking struct {
	Slot    TimeRange
	Name    string
	Email   string
	Phone   string
	Notes   string
	EventID string // calendar event id once inserted
	Link    string // calendar event link
}

// DashboardStats are the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	Users              int64  `json:"users"`
	Orders             int64  `json:"orders"`
	Revenue            string `json:"revenue"`
	ActivePromoCodes   int64  `json:"activePromoCodes"`
	ActiveSubscribers  int64  `json:"activeSubscribers"`
	PublishedWorkshops int64  `json:"publishedWorkshops"`
}
