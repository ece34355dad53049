package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:00", "13:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9am", "25:00", "12:60", "12-30", "12:30:15"}
	for _, s := range invalid {
		assert.ErrorIs(t, TimeString(s).Validate(), ErrInvalidTimeFormat, s)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 1, 14, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), ts)

	_, err = NewTimeStringFromString("half past nine")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	m, err := TimeString("00:00").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("09:30").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = TimeString("bad").MinutesFromMidnight()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	ts, err = TimeString("09:00").AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), ts)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err, "переход через полночь запрещён")
}

func TestTimeString_Sub(t *testing.T) {
	d, err := TimeString("17:00").Sub("09:00")
	require.NoError(t, err)
	assert.Equal(t, 480, d)

	d, err = TimeString("09:00").Sub("09:30")
	require.NoError(t, err)
	assert.Equal(t, -30, d)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
}

func TestTimeString_ValueScan(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("garbage").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	var ts TimeString
	require.NoError(t, ts.Scan("13:45"))
	assert.Equal(t, TimeString("13:45"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
