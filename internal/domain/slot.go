package domain

import "github.com/m04kA/BMS-ScheduleService/pkg/types"

// SlotGrid returns the full ordered grid of bookable slots for a working day:
// every 30-minute boundary from 08:00 through 22:00 inclusive, 29 entries.
// Pure and deterministic, no dependency on the current time.
func SlotGrid() []types.TimeOfDay {
	grid := make([]types.TimeOfDay, 0, SlotGridSize)

	for m := SlotGridStart.Minutes(); m <= SlotGridEnd.Minutes(); m += SlotStepMinutes {
		slot, err := types.FromMinutes(m)
		if err != nil {
			// Границы сетки - константы, выход за сутки невозможен
			break
		}
		grid = append(grid, slot)
	}

	return grid
}

// IsOnGrid reports whether the slot is one of the grid's entries
func IsOnGrid(slot types.TimeOfDay) bool {
	m := slot.Minutes()
	if slot.Validate() != nil {
		return false
	}
	return m >= SlotGridStart.Minutes() &&
		m <= SlotGridEnd.Minutes() &&
		(m-SlotGridStart.Minutes())%SlotStepMinutes == 0
}

// IntervalContainsSlot reports whether an appointment running [start, end)
// occupies the given slot. The containment is half-open: a slot is occupied
// iff start <= slot < end, so a slot beginning exactly at the appointment's
// end is free.
func IntervalContainsSlot(slot, start, end types.TimeOfDay) bool {
	return !slot.IsBefore(start) && slot.IsBefore(end)
}
