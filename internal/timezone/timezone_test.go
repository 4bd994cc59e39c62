package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	assert.Equal(t, DefaultTimezone, loc.String())

	loc = Location("UTC")
	assert.Equal(t, "UTC", loc.String())
}

func TestAt(t *testing.T) {
	loc := Location("UTC")
	day := time.Date(2026, 3, 10, 23, 59, 0, 0, loc)

	got, err := At(day, "09:30", loc)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 30, 0, 0, loc), got)

	_, err = At(day, "9h30", loc)
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	loc := Location("UTC")
	day := time.Date(2026, 3, 10, 15, 4, 5, 0, loc)

	start, end := DayBounds(day, loc)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, loc), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
