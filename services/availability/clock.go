package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeClock converts an editor selection (12-hour display hour, minute
// "00"/"30", period "AM"/"PM") into the canonical zero-padded 24-hour
// "HH:MM" string. An unset hour yields "" so the caller can drop the
// incomplete shift before persisting.
func EncodeClock(hour, minute, period string) string {
	if hour == "" {
		return ""
	}
	h, err := strconv.Atoi(hour)
	if err != nil {
		return ""
	}
	if period == "PM" && h != 12 {
		h += 12
	}
	if period == "AM" && h == 12 {
		h = 0
	}
	return fmt.Sprintf("%02d:%s", h, minute)
}

// DecodeClock is the inverse of EncodeClock: it splits a canonical "HH:MM"
// string into the 12-hour display triple. ok is false for empty or
// malformed input, which callers treat as "skip".
func DecodeClock(s string) (hour, minute, period string, ok bool) {
	h, m, valid := parseClock(s)
	if !valid {
		return "", "", "", false
	}
	period = "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return strconv.Itoa(display), fmt.Sprintf("%02d", m), period, true
}

// parseClock splits "HH:MM" into hour and minute components.
func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
