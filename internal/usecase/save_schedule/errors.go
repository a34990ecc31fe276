package save_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrLunchOrder возвращается, когда конец обеда не позже начала (правило 1)
	ErrLunchOrder = errors.New("lunch break end must be after start")

	// ErrLunchTooShort возвращается, когда обед короче 30 минут (правило 2)
	ErrLunchTooShort = errors.New("lunch break must be at least 30 minutes")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен.
	// Сохранение прервано целиком, локальное состояние не зафиксировано.
	ErrBackendUnavailable = errors.New("barber backend unavailable")

	// ErrRejected возвращается, когда бэкенд отклонил сохранение
	ErrRejected = errors.New("save rejected by backend")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
