package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	require.Len(t, grid, SlotGridSize)
	assert.Equal(t, SlotGridStart, grid[0])
	assert.Equal(t, SlotGridEnd, grid[len(grid)-1])

	for i := 1; i < len(grid); i++ {
		assert.Equal(t, SlotStepMinutes, grid[i].Minutes()-grid[i-1].Minutes(),
			"grid must step by %d minutes at index %d", SlotStepMinutes, i)
	}
}

func TestIsOnGrid(t *testing.T) {
	assert.True(t, IsOnGrid(types.MustTimeOfDay("08:00")))
	assert.True(t, IsOnGrid(types.MustTimeOfDay("13:30")))
	assert.True(t, IsOnGrid(types.MustTimeOfDay("22:00")))

	assert.False(t, IsOnGrid(types.MustTimeOfDay("07:30")), "before grid start")
	assert.False(t, IsOnGrid(types.MustTimeOfDay("22:30")), "after grid end")
	assert.False(t, IsOnGrid(types.MustTimeOfDay("09:15")), "off step boundary")
	assert.False(t, IsOnGrid(types.TimeOfDay("бред")), "invalid value")
}

func TestIntervalContainsSlot_HalfOpen(t *testing.T) {
	start := types.MustTimeOfDay("10:00")
	end := types.MustTimeOfDay("11:00")

	assert.True(t, IntervalContainsSlot(types.MustTimeOfDay("10:00"), start, end), "slot at start is occupied")
	assert.True(t, IntervalContainsSlot(types.MustTimeOfDay("10:30"), start, end), "slot inside is occupied")
	assert.False(t, IntervalContainsSlot(types.MustTimeOfDay("11:00"), start, end), "slot at end is free")
	assert.False(t, IntervalContainsSlot(types.MustTimeOfDay("09:30"), start, end), "slot before is free")
}
