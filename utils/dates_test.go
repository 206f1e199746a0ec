package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	d, err := ParseDay("2025-03-09", jakarta)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, jakarta), d)

	// calendar day is read in the timestamp's own offset
	d, err = ParseDay("2025-03-09T23:30:00-05:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("09/03/2025", time.UTC)
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2025, time.March, 9, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), DayStart(ts))
	assert.Equal(t, time.Date(2025, time.March, 9, 23, 59, 59, 999999999, time.UTC), DayEnd(ts))
	assert.Equal(t, "2025-03-09", DayKey(ts))
	assert.Equal(t, 2.5, Round1(2.45))
}
