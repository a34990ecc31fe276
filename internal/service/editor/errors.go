package editor

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("edit session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrSaveInFlight возвращается при попытке мутации, пока выполняется сохранение
	ErrSaveInFlight = errors.New("save is in flight, session is read-only")

	// ErrSlotOccupied возвращается при попытке переключить слот, занятый записью.
	// Модель при этом не меняется - занятый слот невыбираем.
	ErrSlotOccupied = errors.New("slot is occupied by an appointment")

	// ErrUnknownDay возвращается при неизвестном ключе дня недели
	ErrUnknownDay = errors.New("unknown weekday")

	// ErrInvalidSlot возвращается, когда слот не принадлежит сетке
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")

	// ErrLunchOrder возвращается при нарушении правила 1: конец обеда должен
	// быть строго позже начала. Правка отклонена, прежнее значение сохранено.
	ErrLunchOrder = errors.New("lunch break end must be after start")

	// ErrLunchTooShort возвращается при нарушении правила 2 на сохранении
	ErrLunchTooShort = errors.New("lunch break must be at least 30 minutes")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен на сохранении.
	// Локальное состояние сессии сохранено для повторной попытки.
	ErrBackendUnavailable = errors.New("barber backend unavailable")

	// ErrSaveRejected возвращается, когда бэкенд отклонил сохранение
	ErrSaveRejected = errors.New("save rejected by backend")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("editor service: internal error")
)
