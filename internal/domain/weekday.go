package domain

import (
	"fmt"
	"time"
)

// Weekday is a closed enumeration of the seven days of the week.
// The values are the wire keys used by the barber backend ("lunes".."domingo"),
// so no separate mapping layer is needed for serialization.
type Weekday string

const (
	Monday    Weekday = "lunes"
	Tuesday   Weekday = "martes"
	Wednesday Weekday = "miercoles"
	Thursday  Weekday = "jueves"
	Friday    Weekday = "viernes"
	Saturday  Weekday = "sabado"
	Sunday    Weekday = "domingo"
)

// AllWeekdays lists every weekday in calendar order (Monday first).
// The order is part of the contract: normalized schedules and responses
// always enumerate days in this order.
var AllWeekdays = []Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// ParseWeekday converts a wire key into a Weekday
func ParseWeekday(s string) (Weekday, error) {
	day := Weekday(s)
	if !day.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
	}
	return day, nil
}

// WeekdayFromTime maps a calendar date to its Weekday
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// IsValid reports whether the value is one of the seven known days
func (d Weekday) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// String returns the wire key of the day
func (d Weekday) String() string {
	return string(d)
}
