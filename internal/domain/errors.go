package domain

import "errors"

var (
	// ErrUnknownWeekday возвращается при неизвестном ключе дня недели
	ErrUnknownWeekday = errors.New("domain: unknown weekday")

	// ErrSlotOffGrid возвращается, когда слот не принадлежит сетке 08:00-22:00
	ErrSlotOffGrid = errors.New("domain: slot is not on the 30-minute grid")

	// ErrLunchOrder возвращается, когда конец обеда не позже начала (правило 1)
	ErrLunchOrder = errors.New("domain: lunch break end must be after start")

	// ErrLunchTooShort возвращается, когда обед короче минимальной длительности (правило 2)
	ErrLunchTooShort = errors.New("domain: lunch break must be at least 30 minutes")
)
