package load_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidBackendData возвращается, когда бэкенд вернул данные,
	// которые невозможно нормализовать (битые строки времени и т.п.)
	ErrInvalidBackendData = errors.New("backend returned malformed schedule data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
