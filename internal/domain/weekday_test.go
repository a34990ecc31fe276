package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	for _, day := range AllWeekdays {
		parsed, err := ParseWeekday(day.String())
		require.NoError(t, err)
		assert.Equal(t, day, parsed)
	}

	_, err := ParseWeekday("lundi")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func TestWeekdayFromTime(t *testing.T) {
	// 2026-09-07 - понедельник
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	for i, want := range AllWeekdays {
		got := WeekdayFromTime(monday.AddDate(0, 0, i))
		assert.Equal(t, want, got)
	}
}
