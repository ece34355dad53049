package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	d, err := ParseLocalDate("2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 1, d.Day())
	// Дата собирается в локальной зоне с нулевым временем,
	// иначе календарный день может сдвинуться при сериализации
	assert.Equal(t, time.Local, d.Location())
	assert.Equal(t, 0, d.Hour())

	invalid := []string{"", "2026-09", "01-09-2026", "26-09-01", "2026-13-01", "2026-00-15", "2026-09-32", "2026-09-xx"}
	for _, s := range invalid {
		_, err := ParseLocalDate(s)
		assert.Error(t, err, s)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 9, 1, 15, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-09-01", FormatDate(d))
}

func TestDateOnly(t *testing.T) {
	d := DateOnly(time.Date(2026, 9, 1, 23, 59, 59, 0, time.Local))
	assert.Equal(t, "2026-09-01", FormatDate(d))
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	b := time.Date(2026, 9, 1, 23, 0, 0, 0, time.Local)
	c := time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
