package domain

import "time"

// ScheduleAuditEntry is one journal record of a successful schedule save:
// who saved which barber's schedule, when, and the exact payload sent to
// the backend. The journal is append-only and never read back to serve
// schedule state.
type ScheduleAuditEntry struct {
	ID       int64
	BarberID int64
	UserID   int64

	// Payload is the JSON body persisted upstream, stored verbatim
	Payload []byte

	SavedAt time.Time
}
