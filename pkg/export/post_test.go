package export

import (
	"testing"
	"time"
)

func TestTimeSlotForHour(t *testing.T) {
	tests := []struct {
		hour int
		slot string
	}{
		{6, SlotMorning},
		{11, SlotMorning},
		{12, SlotAfternoon},
		{17, SlotAfternoon},
		{18, SlotEvening},
		{21, SlotEvening},
		{22, SlotNight},
		{23, SlotNight},
		{0, SlotNight},
		{5, SlotNight},
	}

	for _, tt := range tests {
		if got := TimeSlotForHour(tt.hour); got != tt.slot {
			t.Errorf("TimeSlotForHour(%d): got %q, want %q", tt.hour, got, tt.slot)
		}
	}
}

func TestCleanType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Photos", "Photos"},
		{"  Videos ", "Videos"},
		{"", "Unknown"},
		{"   ", "Unknown"},
	}

	for _, tt := range tests {
		if got := CleanType(tt.raw); got != tt.want {
			t.Errorf("CleanType(%q): got %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestPostDerivedKeys(t *testing.T) {
	p := Post{PublishedAt: time.Date(2025, 3, 7, 20, 15, 0, 0, time.UTC)}

	if !p.HasTime() {
		t.Fatal("HasTime should be true")
	}
	if got := p.DateKey(); got != "2025-03-07" {
		t.Errorf("DateKey: got %q", got)
	}
	if got := p.MonthKey(); got != "2025-03" {
		t.Errorf("MonthKey: got %q", got)
	}
	if got := p.WeekdayName(); got != "Friday" {
		t.Errorf("WeekdayName: got %q", got)
	}
	if got := p.TimeSlot(); got != SlotEvening {
		t.Errorf("TimeSlot: got %q", got)
	}

	var zero Post
	if zero.HasTime() {
		t.Error("zero post should have no time")
	}
}
