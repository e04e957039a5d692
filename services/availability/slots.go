package availability

import (
	"fmt"
	"time"
)

// Slot is one bookable candidate: a concrete instant plus the display time
// string compared against the doctor's booked-slot index.
type Slot struct {
	Time        time.Time `json:"datetime"`
	DisplayTime string    `json:"time"`
}

// SlotInterval is the fixed booking cadence.
const SlotInterval = 30 * time.Minute

// WindowDays is the rolling booking horizon, index 0 = today.
const WindowDays = 7

// DefaultShift covers doctors that never configured working hours.
var DefaultShift = Shift{Start: "10:00", End: "21:00"}

// DateKey renders the persisted slot-date key "D_M_YYYY" (no zero padding,
// 1-based month), matching the keys kept in Doctor.SlotsBooked.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d_%d_%d", t.Day(), int(t.Month()), t.Year())
}

// SlotInstant resolves a "D_M_YYYY" date key and "HH:MM" display time back
// into a concrete instant in the given location.
func SlotInstant(dateKey, displayTime string, loc *time.Location) (time.Time, error) {
	var day, month, year int
	if _, err := fmt.Sscanf(dateKey, "%d_%d_%d", &day, &month, &year); err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", dateKey, err)
	}
	h, m, ok := parseClock(displayTime)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid slot time %q", displayTime)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date key %q", dateKey)
	}
	return time.Date(year, time.Month(month), day, h, m, 0, 0, loc), nil
}

// Generate derives the bookable slots for the WindowDays-day window starting
// at now's calendar day. booked maps DateKey strings to already reserved
// display times. The result always has WindowDays entries; an empty entry
// means the doctor is off, fully booked, or past closing time that day.
//
// The computation is pure: it only reads its arguments and returns a fresh
// structure, so concurrent calls need no coordination.
func Generate(sched DaySchedule, booked map[string][]string, now time.Time) [][]Slot {
	days := make([][]Slot, 0, WindowDays)

	for i := 0; i < WindowDays; i++ {
		day := now.AddDate(0, 0, i)
		shifts, working := sched[day.Weekday()]
		if len(sched) == 0 {
			// Nothing configured at all: clinic default hours every day.
			shifts = []Shift{DefaultShift}
		} else if !working {
			days = append(days, []Slot{})
			continue
		}

		var slots []Slot
		for _, shift := range shifts {
			slots = append(slots, generateShift(day, shift, booked, now, i == 0)...)
		}
		if slots == nil {
			slots = []Slot{}
		}
		days = append(days, slots)
	}
	return days
}

// generateShift walks one shift at the slot cadence, half-open at the end
// bound, skipping candidates already present in the booked index.
func generateShift(day time.Time, shift Shift, booked map[string][]string, now time.Time, today bool) []Slot {
	sh, sm, ok := parseClock(shift.Start)
	if !ok {
		return nil
	}
	eh, em, ok := parseClock(shift.End)
	if !ok {
		return nil
	}

	cursor := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, day.Location())

	// Same-day bookings need staff lead time: never offer a slot earlier
	// than an hour out, rounded up to the next cadence boundary.
	if today {
		if earliest := leadTimeFloor(now); earliest.After(cursor) {
			cursor = earliest
		}
	}

	var slots []Slot
	key := DateKey(day)
	for cursor.Before(end) {
		display := cursor.Format("15:04")
		if !slotTaken(booked[key], display) {
			slots = append(slots, Slot{Time: cursor, DisplayTime: display})
		}
		cursor = cursor.Add(SlotInterval)
	}
	return slots
}

// leadTimeFloor returns now plus one hour, rounded up to the next slot
// boundary (:00 stays, :01–:30 becomes :30, :31–:59 rolls to the next hour).
func leadTimeFloor(now time.Time) time.Time {
	t := now.Add(time.Hour)
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	switch m := t.Minute(); {
	case m == 0:
		return t
	case m <= 30:
		return t.Add(time.Duration(30-m) * time.Minute)
	default:
		return t.Add(time.Duration(60-m) * time.Minute)
	}
}

func slotTaken(taken []string, display string) bool {
	for _, t := range taken {
		if t == display {
			return true
		}
	}
	return false
}
