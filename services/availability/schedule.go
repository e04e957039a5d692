package availability

import (
	"regexp"
	"time"

	"clinicbook/models"
)

// Shift is one working period within a day, both bounds as zero-padded
// 24-hour "HH:MM" strings.
type Shift struct {
	Start string
	End   string
}

// DaySchedule maps a weekday to its ordered working shifts. An empty
// schedule means "nothing configured" and callers fall back to the clinic
// default shift; a populated schedule with a missing weekday means the
// doctor does not work that day. The two cases are deliberately distinct.
type DaySchedule map[time.Weekday][]Shift

// entryPattern matches the legacy persisted form "Monday: 09:00 - 17:00".
var entryPattern = regexp.MustCompile(`^\s*(\w+):\s*(\d{2}:\d{2})\s*-\s*(\d{2}:\d{2})\s*$`)

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseWeekly converts legacy availability strings into a DaySchedule.
// Entries that do not match the expected shape, or that name an unknown
// weekday, contribute nothing; malformed legacy data must never fail a
// profile read. Input order is preserved within each weekday.
func ParseWeekly(entries []string) DaySchedule {
	sched := make(DaySchedule)
	for _, entry := range entries {
		m := entryPattern.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		day, ok := weekdayNames[m[1]]
		if !ok {
			continue
		}
		sched[day] = append(sched[day], Shift{Start: m[2], End: m[3]})
	}
	return sched
}

// NormalizeLegacy migrates legacy availability strings into typed rules.
// It applies the same tolerance as ParseWeekly: unparseable entries are
// dropped so a one-time migration cannot fail on dirty records.
func NormalizeLegacy(entries []string) []models.AvailabilityRule {
	var rules []models.AvailabilityRule
	for _, entry := range entries {
		m := entryPattern.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		day, ok := weekdayNames[m[1]]
		if !ok {
			continue
		}
		rules = append(rules, models.AvailabilityRule{Day: day, Start: m[2], End: m[3]})
	}
	return rules
}

// RulesToSchedule builds a DaySchedule from typed availability rules.
func RulesToSchedule(rules []models.AvailabilityRule) DaySchedule {
	sched := make(DaySchedule)
	for _, r := range rules {
		if r.Day < time.Sunday || r.Day > time.Saturday {
			continue
		}
		sched[r.Day] = append(sched[r.Day], Shift{Start: r.Start, End: r.End})
	}
	return sched
}

// FormatRules renders typed rules back into the legacy wire form consumed by
// the profile editors, one "Day: HH:MM - HH:MM" string per shift.
func FormatRules(rules []models.AvailabilityRule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.Day < time.Sunday || r.Day > time.Saturday {
			continue
		}
		out = append(out, r.Day.String()+": "+r.Start+" - "+r.End)
	}
	return out
}
