package domain

import "github.com/m04kA/BMS-ScheduleService/pkg/types"

// Slot grid boundaries: every half hour from 08:00 through 22:00 inclusive
const (
	SlotGridStart   = types.TimeOfDay("08:00")
	SlotGridEnd     = types.TimeOfDay("22:00")
	SlotStepMinutes = 30

	// SlotGridSize number of slots in a full working day grid
	SlotGridSize = 29
)

// Lunch break defaults and validation constants
const (
	DefaultLunchStart = types.TimeOfDay("13:00")
	DefaultLunchEnd   = types.TimeOfDay("14:00")

	// MinLunchBreakMinutes minimum allowed lunch break duration, enforced at save time
	MinLunchBreakMinutes = 30
)

// Display fallbacks for appointments with no client or service attached
const (
	DefaultClientLabel  = "Cliente"
	DefaultServiceLabel = "Servicio"
)

// Wire formats
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
