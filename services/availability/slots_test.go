package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is an arbitrary fixed Monday used as the booking reference day.
var monday = time.Date(2025, time.June, 2, 6, 0, 0, 0, time.UTC)

func displayTimes(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.DisplayTime)
	}
	return out
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2_6_2025", DateKey(monday))
	assert.Equal(t, "31_12_2024", DateKey(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC)))
}

func TestGenerateDefaultFallback(t *testing.T) {
	days := Generate(ParseWeekly(nil), nil, monday)

	require.Len(t, days, WindowDays)
	for i, day := range days {
		require.NotEmpty(t, day, "offset %d", i)
		assert.Equal(t, "10:00", day[0].DisplayTime)
		assert.Equal(t, "20:30", day[len(day)-1].DisplayTime)
		assert.Len(t, day, 22)
	}
}

func TestGenerateExplicitDayOff(t *testing.T) {
	sched := ParseWeekly([]string{"Monday: 09:00 - 17:00"})
	days := Generate(sched, nil, monday)

	require.Len(t, days, WindowDays)
	assert.NotEmpty(t, days[0], "reference Monday should be bookable")
	for i := 1; i < WindowDays; i++ {
		assert.Empty(t, days[i], "offset %d", i)
	}
}

func TestGenerateBookedExclusion(t *testing.T) {
	sched := ParseWeekly([]string{"Tuesday: 09:00 - 10:00"})
	booked := map[string][]string{"3_6_2025": {"09:30"}}

	days := Generate(sched, booked, monday)

	assert.Equal(t, []string{"09:00"}, displayTimes(days[1]))
}

func TestGenerateTodayLeadTime(t *testing.T) {
	sched := ParseWeekly([]string{"Monday: 09:00 - 17:00"})
	ref := time.Date(2025, time.June, 2, 8, 10, 0, 0, time.UTC)

	days := Generate(sched, nil, ref)

	require.NotEmpty(t, days[0])
	assert.Equal(t, "09:30", days[0][0].DisplayTime)
}

func TestGenerateTodayOnHourLead(t *testing.T) {
	sched := ParseWeekly([]string{"Monday: 09:00 - 17:00"})
	ref := time.Date(2025, time.June, 2, 13, 0, 0, 0, time.UTC)

	days := Generate(sched, nil, ref)

	require.NotEmpty(t, days[0])
	assert.Equal(t, "14:00", days[0][0].DisplayTime)
}

func TestGenerateTodayPastClosing(t *testing.T) {
	sched := ParseWeekly([]string{"Monday: 09:00 - 17:00"})
	ref := time.Date(2025, time.June, 2, 20, 0, 0, 0, time.UTC)

	days := Generate(sched, nil, ref)

	assert.Empty(t, days[0])
}

func TestGenerateHalfOpenInterval(t *testing.T) {
	sched := ParseWeekly([]string{"Tuesday: 09:00 - 10:00"})

	days := Generate(sched, nil, monday)

	assert.Equal(t, []string{"09:00", "09:30"}, displayTimes(days[1]))
}

func TestGenerateWednesdayScenario(t *testing.T) {
	sched := ParseWeekly([]string{"Wednesday: 10:00 - 13:00"})

	days := Generate(sched, nil, monday)

	require.Len(t, days, WindowDays)
	assert.Equal(t,
		[]string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30"},
		displayTimes(days[2]))
	for i, day := range days {
		if i == 2 {
			continue
		}
		assert.Empty(t, day, "offset %d", i)
	}
}

func TestGenerateMultipleShiftsSameDay(t *testing.T) {
	sched := ParseWeekly([]string{
		"Tuesday: 09:00 - 10:00",
		"Tuesday: 15:00 - 16:00",
	})

	days := Generate(sched, nil, monday)

	assert.Equal(t, []string{"09:00", "09:30", "15:00", "15:30"}, displayTimes(days[1]))
}

func TestGenerateSlotInstants(t *testing.T) {
	sched := ParseWeekly([]string{"Tuesday: 09:00 - 10:00"})

	days := Generate(sched, nil, monday)

	require.NotEmpty(t, days[1])
	assert.Equal(t, time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC), days[1][0].Time)
}
