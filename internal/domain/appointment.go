package domain

import "github.com/m04kA/BMS-ScheduleService/pkg/types"

// Appointment is an existing booking for a barber on a concrete date.
// Appointments are owned by the backend: this service only reads them to
// compute slot occupancy and never creates, mutates or deletes them.
type Appointment struct {
	Start types.TimeOfDay
	End   types.TimeOfDay

	// ClientName and ServiceName may be empty when the backend record has
	// no client/service attached; use ClientLabel/ServiceLabel for display.
	ClientName  string
	ServiceName string
}

// ClientLabel returns the display name of the client, falling back to the
// generic label when the backend carries no name
func (a *Appointment) ClientLabel() string {
	if a.ClientName != "" {
		return a.ClientName
	}
	return DefaultClientLabel
}

// ServiceLabel returns the display name of the booked service
func (a *Appointment) ServiceLabel() string {
	if a.ServiceName != "" {
		return a.ServiceName
	}
	return DefaultServiceLabel
}

// ContainsSlot reports whether the appointment occupies the slot (half-open)
func (a *Appointment) ContainsSlot(slot types.TimeOfDay) bool {
	return IntervalContainsSlot(slot, a.Start, a.End)
}

// OccupiedSlot scans the day's appointments and returns the first one whose
// interval contains the slot, or nil when the slot is free. At most one
// appointment per slot is expected, but the contract does not assume it.
func OccupiedSlot(slot types.TimeOfDay, appointments []Appointment) *Appointment {
	for i := range appointments {
		if appointments[i].ContainsSlot(slot) {
			return &appointments[i]
		}
	}
	return nil
}
