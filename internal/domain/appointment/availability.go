package appointment

// SlotStepMinutes is the granularity of bookable start times.
const SlotStepMinutes = 30

// WorkingWindow is a barber's configured window for one weekday,
// expressed in minutes since midnight.
type WorkingWindow struct {
	DayOfWeek    int
	StartMinutes int
	EndMinutes   int
	Available    bool
}

// BookedInterval is the occupied range of an existing appointment.
type BookedInterval struct {
	StartMinutes    int
	DurationMinutes int
}

// AvailableSlots enumerates the bookable start times for one day.
//
// The window may be nil (barber has no schedule row for the weekday); that
// and Available=false both yield no slots. When isToday is set, slots at or
// before nowMinutes are skipped. Results are "HH:MM:SS" strings in ascending
// order. The function is pure: all data is fetched by the caller beforehand.
func AvailableSlots(
	window *WorkingWindow,
	booked []BookedInterval,
	durationMinutes int,
	isToday bool,
	nowMinutes int,
) []string {

	slots := []string{}

	if window == nil || !window.Available {
		return slots
	}

	for slot := window.StartMinutes; slot+durationMinutes <= window.EndMinutes; slot += SlotStepMinutes {

		if isToday && slot <= nowMinutes {
			continue
		}

		slotEnd := slot + durationMinutes

		blocked := false
		for _, b := range booked {
			bStart := b.StartMinutes
			bEnd := b.StartMinutes + b.DurationMinutes

			// Any overlap counts, containment in either direction included.
			if (slot >= bStart && slot < bEnd) ||
				(slotEnd > bStart && slotEnd <= bEnd) ||
				(slot <= bStart && slotEnd >= bEnd) {
				blocked = true
				break
			}
		}

		if !blocked {
			slots = append(slots, FormatClock(slot))
		}
	}

	return slots
}
