package appointment

import (
	"reflect"
	"testing"
)

func window(start, end int) *WorkingWindow {
	return &WorkingWindow{StartMinutes: start, EndMinutes: end, Available: true}
}

func TestAvailableSlots_FullOpenDay(t *testing.T) {
	// 09:00-17:00, 30 min service, no bookings.
	slots := AvailableSlots(window(540, 1020), nil, 30, false, 0)

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00:00" {
		t.Errorf("expected first slot 09:00:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "16:30:00" {
		t.Errorf("expected last slot 16:30:00, got %s", slots[len(slots)-1])
	}
}

func TestAvailableSlots_BookingBlocksOverlaps(t *testing.T) {
	// 60 min service, one 60 min booking at 10:00. 09:30 would run into
	// the booking, so only 09:00 survives before it.
	booked := []BookedInterval{{StartMinutes: 600, DurationMinutes: 60}}

	slots := AvailableSlots(window(540, 1020), booked, 60, false, 0)

	got := map[string]bool{}
	for _, s := range slots {
		got[s] = true
	}

	if !got["09:00:00"] {
		t.Error("expected 09:00:00 to be available")
	}
	if got["09:30:00"] {
		t.Error("expected 09:30:00 to be blocked (runs into 10:00 booking)")
	}
	if got["10:00:00"] {
		t.Error("expected 10:00:00 to be blocked")
	}
	if got["10:30:00"] {
		t.Error("expected 10:30:00 to be blocked")
	}
	if !got["11:00:00"] {
		t.Error("expected 11:00:00 to be available")
	}
}

func TestAvailableSlots_UnavailableDay(t *testing.T) {
	w := &WorkingWindow{StartMinutes: 540, EndMinutes: 1020, Available: false}
	booked := []BookedInterval{{StartMinutes: 600, DurationMinutes: 30}}

	if slots := AvailableSlots(w, booked, 30, false, 0); len(slots) != 0 {
		t.Fatalf("expected no slots on unavailable day, got %v", slots)
	}
	if slots := AvailableSlots(nil, nil, 30, false, 0); len(slots) != 0 {
		t.Fatalf("expected no slots without a window, got %v", slots)
	}
}

func TestAvailableSlots_TodaySkipsPastSlots(t *testing.T) {
	// Current time 14:05; the 14:00 slot has started, 14:30 is next.
	slots := AvailableSlots(window(540, 1020), nil, 30, true, 845)

	if len(slots) == 0 {
		t.Fatal("expected slots after current time")
	}
	if slots[0] != "14:30:00" {
		t.Errorf("expected first slot 14:30:00, got %s", slots[0])
	}
	for _, s := range slots {
		m, err := ParseClock(s)
		if err != nil {
			t.Fatalf("unparsable slot %q: %v", s, err)
		}
		if m <= 845 {
			t.Errorf("slot %s is not strictly after current time", s)
		}
	}
}

func TestAvailableSlots_DurationBoundary(t *testing.T) {
	// 09:00-10:00 window: a 45 min service only fits at 09:00, a 60 min
	// service exactly fills the window, 90 min does not fit at all.
	tests := []struct {
		name     string
		duration int
		want     []string
	}{
		{"45min", 45, []string{"09:00:00"}},
		{"60min exact fit", 60, []string{"09:00:00"}},
		{"90min no fit", 90, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlots(window(540, 600), nil, tt.duration, false, 0)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAvailableSlots_SlotContainingBooking(t *testing.T) {
	// A 15 min booking at 10:00 sits fully inside the 10:00 90 min
	// candidate; containment must block too.
	booked := []BookedInterval{{StartMinutes: 600, DurationMinutes: 15}}

	slots := AvailableSlots(window(540, 1020), booked, 90, false, 0)
	for _, s := range slots {
		if s == "10:00:00" || s == "09:30:00" || s == "09:00:00" {
			t.Errorf("slot %s overlaps the contained booking", s)
		}
	}
}

func TestAvailableSlots_NoPairwiseOverlap(t *testing.T) {
	booked := []BookedInterval{
		{StartMinutes: 570, DurationMinutes: 45},
		{StartMinutes: 780, DurationMinutes: 30},
		{StartMinutes: 960, DurationMinutes: 60},
	}
	duration := 40

	slots := AvailableSlots(window(540, 1080), booked, duration, false, 0)

	for _, s := range slots {
		start, err := ParseClock(s)
		if err != nil {
			t.Fatalf("unparsable slot %q: %v", s, err)
		}
		end := start + duration

		if start < 540 || end > 1080 {
			t.Errorf("slot %s leaves the working window", s)
		}
		for _, b := range booked {
			bEnd := b.StartMinutes + b.DurationMinutes
			if start < bEnd && end > b.StartMinutes {
				t.Errorf("slot %s overlaps booking at %d", s, b.StartMinutes)
			}
		}
	}
}

func TestAvailableSlots_EmptyDayCount(t *testing.T) {
	// With no bookings the count is floor((end-start)/30) minus the
	// tail slots the duration no longer fits into.
	tests := []struct {
		name     string
		start    int
		end      int
		duration int
		want     int
	}{
		{"8h day 30min", 540, 1020, 30, 16},
		{"8h day 60min", 540, 1020, 60, 15},
		{"8h day 90min", 540, 1020, 90, 14},
		{"odd window", 540, 1010, 30, 15},
		{"zero width", 540, 540, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlots(window(tt.start, tt.end), nil, tt.duration, false, 0)
			if len(got) != tt.want {
				t.Errorf("expected %d slots, got %d: %v", tt.want, len(got), got)
			}
		})
	}
}

func TestAvailableSlots_Ordering(t *testing.T) {
	booked := []BookedInterval{{StartMinutes: 660, DurationMinutes: 30}}
	slots := AvailableSlots(window(540, 1020), booked, 30, false, 0)

	for i := 1; i < len(slots); i++ {
		prev, _ := ParseClock(slots[i-1])
		cur, _ := ParseClock(slots[i])
		if cur <= prev {
			t.Fatalf("slots out of order: %s before %s", slots[i-1], slots[i])
		}
	}
}
