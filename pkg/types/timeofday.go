package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени (ожидается "HH:MM")
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeOfDay представляет время дня в формате "HH:MM" (24 часа, с ведущими нулями).
// Значение всегда валидно, если получено через NewTimeOfDay.
// Сравнение всегда выполняется по минутам с начала суток, а не лексикографически.
type TimeOfDay string

// NewTimeOfDay создает TimeOfDay из строки "HH:MM"
// Возвращает ErrInvalidTimeFormat для любого некорректного значения -
// ошибку нужно обрабатывать, а не молча приводить к дефолту
func NewTimeOfDay(s string) (TimeOfDay, error) {
	t := TimeOfDay(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// MustTimeOfDay создает TimeOfDay и паникует при некорректном значении.
// Используется только для констант и в тестах.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := NewTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMinutes создает TimeOfDay из количества минут с начала суток
func FromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes > 23*60+59 {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeOfDay(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// TruncateSeconds отбрасывает секунды у строки "HH:MM:SS".
// Значения короче "HH:MM" возвращаются как есть - валидация на совести NewTimeOfDay.
func TruncateSeconds(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// Validate проверяет формат "HH:MM"
func (t TimeOfDay) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')

	if hours > 23 || minutes > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return nil
}

// IsZero проверяет, что значение не задано
func (t TimeOfDay) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток.
// Для невалидного значения возвращает 0 - вызывающий код обязан
// валидировать значение на границе системы.
func (t TimeOfDay) Minutes() int {
	if t.Validate() != nil {
		return 0
	}
	s := string(t)
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + minutes
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
func (t TimeOfDay) AddMinutes(minutes int) (TimeOfDay, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + minutes)
}

// IsBefore проверяет, что t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter проверяет, что t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.Minutes() > other.Minutes()
}

// String возвращает строковое представление "HH:MM"
func (t TimeOfDay) String() string {
	return string(t)
}
