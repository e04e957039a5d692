package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicbook/models"
)

func TestParseWeekly(t *testing.T) {
	sched := ParseWeekly([]string{
		"Monday: 09:00 - 17:00",
		"garbage-string",
		"Friday: 14:00 - 18:30",
	})

	require.Len(t, sched, 2)
	assert.Equal(t, []Shift{{Start: "09:00", End: "17:00"}}, sched[time.Monday])
	assert.Equal(t, []Shift{{Start: "14:00", End: "18:30"}}, sched[time.Friday])
}

func TestParseWeeklyMultipleShiftsKeepOrder(t *testing.T) {
	sched := ParseWeekly([]string{
		"Tuesday: 14:00 - 18:00",
		"Tuesday: 08:00 - 12:00",
	})

	require.Len(t, sched[time.Tuesday], 2)
	assert.Equal(t, "14:00", sched[time.Tuesday][0].Start)
	assert.Equal(t, "08:00", sched[time.Tuesday][1].Start)
}

func TestParseWeeklyUnknownDay(t *testing.T) {
	sched := ParseWeekly([]string{"Someday: 09:00 - 17:00"})
	assert.Empty(t, sched)
}

func TestParseWeeklyEmptyInput(t *testing.T) {
	assert.Empty(t, ParseWeekly(nil))
	assert.Empty(t, ParseWeekly([]string{}))
}

func TestNormalizeLegacy(t *testing.T) {
	rules := NormalizeLegacy([]string{
		"Monday: 09:00 - 17:00",
		"not a shift",
		"Saturday: 10:00 - 13:30",
	})

	require.Len(t, rules, 2)
	assert.Equal(t, models.AvailabilityRule{Day: time.Monday, Start: "09:00", End: "17:00"}, rules[0])
	assert.Equal(t, models.AvailabilityRule{Day: time.Saturday, Start: "10:00", End: "13:30"}, rules[1])
}

func TestRulesToScheduleMatchesLegacyParse(t *testing.T) {
	entries := []string{
		"Monday: 09:00 - 17:00",
		"Monday: 18:00 - 20:00",
		"Wednesday: 10:00 - 13:00",
	}
	assert.Equal(t, ParseWeekly(entries), RulesToSchedule(NormalizeLegacy(entries)))
}

func TestFormatRulesRoundTrip(t *testing.T) {
	entries := []string{"Thursday: 08:30 - 12:00", "Sunday: 11:00 - 15:00"}
	assert.Equal(t, entries, FormatRules(NormalizeLegacy(entries)))
}
