package save_schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Schedule == nil {
		return fmt.Errorf("%w: schedule is required", ErrInvalidInput)
	}

	for _, day := range domain.AllWeekdays {
		if _, ok := req.Schedule.Days[day]; !ok {
			return fmt.Errorf("%w: schedule is missing day %s", ErrInvalidInput, day)
		}
	}

	return nil
}

// validateLunchBreak перепроверяет оба правила обеденного перерыва.
// Любое нарушение прерывает сохранение целиком - частичных сохранений нет.
func validateLunchBreak(lunch domain.LunchBreak) error {
	if err := lunch.Validate(); err != nil {
		switch {
		case errors.Is(err, domain.ErrLunchOrder):
			return fmt.Errorf("%w: %s-%s", ErrLunchOrder, lunch.Start, lunch.End)
		case errors.Is(err, domain.ErrLunchTooShort):
			return fmt.Errorf("%w: %d minutes", ErrLunchTooShort, lunch.DurationMinutes())
		default:
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return nil
}
