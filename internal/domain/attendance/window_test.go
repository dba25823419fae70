package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func at(hour, minute, second int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, second, 0, time.UTC)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("07:30:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 7, Minute: 30, Second: 5}, tod)
	assert.Equal(t, "07:30:05", tod.String())

	for _, bad := range []string{"", "7:30", "25:00:00", "07:61:00", "noon"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestWithinWindow_SameDay(t *testing.T) {
	start := mustTimeOfDay(t, "07:00:00")
	end := mustTimeOfDay(t, "16:00:00")

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before start", at(6, 59, 59), false},
		{"at start", at(7, 0, 0), true},
		{"midday", at(12, 30, 0), true},
		{"at end", at(16, 0, 0), true},
		{"after end", at(16, 0, 1), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, WithinWindow(c.now, start, end))
		})
	}
}

func TestWithinWindow_WrapsPastMidnight(t *testing.T) {
	start := mustTimeOfDay(t, "22:00:00")
	end := mustTimeOfDay(t, "02:00:00")

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"late evening", at(23, 30, 0), true},
		{"at start", at(22, 0, 0), true},
		{"just before start", at(21, 59, 59), false},
		{"early morning next day", at(1, 0, 0), true},
		{"at end", at(2, 0, 0), true},
		{"after end", at(2, 0, 1), false},
		{"midday gap", at(12, 0, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, WithinWindow(c.now, start, end))
		})
	}
}

func TestWithinWindow_ZeroWidth(t *testing.T) {
	tod := mustTimeOfDay(t, "08:00:00")
	assert.False(t, WithinWindow(at(8, 0, 0), tod, tod))
	assert.False(t, WithinWindow(at(9, 0, 0), tod, tod))
}

func TestTimeOfDayAt_KeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Makassar")
	require.NoError(t, err)

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, loc)
	anchored := mustTimeOfDay(t, "07:15:00").At(day)

	assert.Equal(t, loc, anchored.Location())
	assert.Equal(t, 7, anchored.Hour())
	assert.Equal(t, 15, anchored.Minute())
	assert.Equal(t, day.Day(), anchored.Day())
}
