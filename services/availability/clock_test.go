package availability

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeClock(t *testing.T) {
	assert.Equal(t, "09:00", EncodeClock("9", "00", "AM"))
	assert.Equal(t, "21:30", EncodeClock("9", "30", "PM"))
	assert.Equal(t, "12:00", EncodeClock("12", "00", "PM"))
	assert.Equal(t, "00:30", EncodeClock("12", "30", "AM"))
}

func TestEncodeClockUnsetHour(t *testing.T) {
	assert.Equal(t, "", EncodeClock("", "00", "AM"))
	assert.Equal(t, "", EncodeClock("ten", "00", "AM"))
}

func TestDecodeClockSkipsMalformed(t *testing.T) {
	for _, input := range []string{"", "25:00", "9", "aa:bb", "10:75"} {
		_, _, _, ok := DecodeClock(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestClockRoundTripFromDisplay(t *testing.T) {
	for h := 1; h <= 12; h++ {
		for _, minute := range []string{"00", "30"} {
			for _, period := range []string{"AM", "PM"} {
				hour := fmt.Sprintf("%d", h)
				encoded := EncodeClock(hour, minute, period)
				gotHour, gotMinute, gotPeriod, ok := DecodeClock(encoded)
				require.True(t, ok, "encoded %q", encoded)
				assert.Equal(t, hour, gotHour)
				assert.Equal(t, minute, gotMinute)
				assert.Equal(t, period, gotPeriod)
			}
		}
	}
}

func TestClockRoundTripFromCanonical(t *testing.T) {
	for h := 0; h <= 23; h++ {
		for _, m := range []string{"00", "30"} {
			canonical := fmt.Sprintf("%02d:%s", h, m)
			hour, minute, period, ok := DecodeClock(canonical)
			require.True(t, ok)
			assert.Equal(t, canonical, EncodeClock(hour, minute, period))
		}
	}
}
