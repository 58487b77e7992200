package export

import (
	"strings"
	"time"
)

// Time slot labels used for posting-time analysis.
const (
	SlotMorning   = "Morning (6AM-12PM)"
	SlotAfternoon = "Afternoon (12PM-6PM)"
	SlotEvening   = "Evening (6PM-10PM)"
	SlotNight     = "Night (10PM-6AM)"
)

// SlotOrder is the display order for time-slot tables.
var SlotOrder = []string{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

// WeekdayOrder is the display order for weekday tables.
var WeekdayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Post is a single row of a Meta post-level export, with derived fields.
type Post struct {
	ID          string    `json:"post_id"`
	Message     string    `json:"message"`
	Permalink   string    `json:"permalink"`
	Type        string    `json:"post_type"`
	PublishedAt time.Time `json:"published_at"`

	Reactions   int `json:"reactions"`
	Comments    int `json:"comments"`
	Shares      int `json:"shares"`
	Views       int `json:"views"`
	Reach       int `json:"reach"`
	TotalClicks int `json:"total_clicks"`
	Engagement  int `json:"engagement"`

	// Per-emotion counts, present only after Graph API enrichment.
	Like  int `json:"like"`
	Love  int `json:"love"`
	Haha  int `json:"haha"`
	Wow   int `json:"wow"`
	Sad   int `json:"sad"`
	Angry int `json:"angry"`

	HasBreakdown bool `json:"has_breakdown"`
}

// HasTime reports whether the publish time parsed successfully.
func (p *Post) HasTime() bool {
	return !p.PublishedAt.IsZero()
}

// DateKey returns the calendar date as YYYY-MM-DD.
func (p *Post) DateKey() string {
	return p.PublishedAt.Format("2006-01-02")
}

// MonthKey returns the calendar month as YYYY-MM.
func (p *Post) MonthKey() string {
	return p.PublishedAt.Format("2006-01")
}

// WeekdayName returns the English weekday name.
func (p *Post) WeekdayName() string {
	return p.PublishedAt.Weekday().String()
}

// TimeSlot buckets the publish hour into the four posting slots.
func (p *Post) TimeSlot() string {
	return TimeSlotForHour(p.PublishedAt.Hour())
}

// TimeSlotForHour buckets an hour of day into a posting slot.
func TimeSlotForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	case hour >= 18 && hour < 22:
		return SlotEvening
	default:
		return SlotNight
	}
}

// CleanType normalizes a raw post type for grouping and filtering.
func CleanType(raw string) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "Unknown"
	}
	return t
}
