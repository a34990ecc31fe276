package barberbackend

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у барбера еще нет сохраненного расписания.
	// Это не ошибка для вызывающего кода - он подставляет дефолтное расписание.
	ErrScheduleNotFound = errors.New("barberbackend client: schedule not found")

	// ErrUnavailable возвращается при транспортной ошибке или 5xx от бэкенда
	ErrUnavailable = errors.New("barberbackend client: backend unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда
	ErrInvalidResponse = errors.New("barberbackend client: invalid response")

	// ErrRejected возвращается, когда бэкенд отклонил сохранение расписания (4xx)
	ErrRejected = errors.New("barberbackend client: save rejected by backend")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("barberbackend client: internal error")
)
