package domain

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

// DayAvailability is the availability of a barber on one weekday:
// whether the day is worked at all, plus the set of selected slots.
// Slots are unique and kept in ascending time order.
type DayAvailability struct {
	Active bool
	Slots  []types.TimeOfDay
}

// LunchBreak is the single daily non-bookable interval, independent of the
// day of week. End is strictly after Start; at save time the interval must
// be at least MinLunchBreakMinutes long.
type LunchBreak struct {
	Start  types.TimeOfDay
	End    types.TimeOfDay
	Active bool
}

// DurationMinutes returns the lunch break length in minutes
func (lb LunchBreak) DurationMinutes() int {
	return lb.End.Minutes() - lb.Start.Minutes()
}

// ValidateOrder enforces rule 1: end strictly after start.
// Checked on every field edit.
func (lb LunchBreak) ValidateOrder() error {
	if lb.End.Minutes() <= lb.Start.Minutes() {
		return fmt.Errorf("%w: %s-%s", ErrLunchOrder, lb.Start, lb.End)
	}
	return nil
}

// Validate enforces both lunch break rules. Checked before every save:
// rule 1 (ordering) and rule 2 (minimum duration).
func (lb LunchBreak) Validate() error {
	if err := lb.ValidateOrder(); err != nil {
		return err
	}
	if lb.DurationMinutes() < MinLunchBreakMinutes {
		return fmt.Errorf("%w: %d minutes", ErrLunchTooShort, lb.DurationMinutes())
	}
	return nil
}

// WeeklySchedule is the canonical weekly availability of one barber.
// Days always contains exactly the seven weekday keys.
// Exceptions are date-specific overrides owned by the backend; this service
// passes them through untouched.
type WeeklySchedule struct {
	Days       map[Weekday]DayAvailability
	LunchBreak LunchBreak
	Exceptions []json.RawMessage
}

// RawDayAvailability is the not-yet-validated shape of one day as it comes
// from the backend
type RawDayAvailability struct {
	Active bool
	Slots  []string
}

// RawSchedule is the not-yet-validated shape of a stored schedule.
// The backend may return partial data: missing days and missing lunch bounds
// are expected and handled by NormalizeSchedule.
type RawSchedule struct {
	Days        map[string]RawDayAvailability
	LunchStart  string
	LunchEnd    string
	LunchActive *bool
	Exceptions  []json.RawMessage
}

// NewDefaultSchedule returns the schedule used when a barber has no stored
// schedule yet: all seven days inactive with no slots, lunch break defaulted
// to 13:00-14:00 active.
func NewDefaultSchedule() *WeeklySchedule {
	days := make(map[Weekday]DayAvailability, len(AllWeekdays))
	for _, day := range AllWeekdays {
		days[day] = DayAvailability{Active: false, Slots: []types.TimeOfDay{}}
	}

	return &WeeklySchedule{
		Days: days,
		LunchBreak: LunchBreak{
			Start:  DefaultLunchStart,
			End:    DefaultLunchEnd,
			Active: true,
		},
		Exceptions: []json.RawMessage{},
	}
}

// NormalizeSchedule converts a raw backend schedule into the canonical form:
//   - exactly the seven weekday keys, absent days defaulting to inactive/empty;
//   - slot lists deduplicated and sorted ascending by time value;
//   - lunch break defaulted to 13:00-14:00 active when either bound is missing.
//
// Unknown day keys are skipped (the backend owns its own extensions), but a
// malformed time string is a defect and is surfaced as an error rather than
// silently coerced.
func NormalizeSchedule(raw RawSchedule) (*WeeklySchedule, error) {
	schedule := NewDefaultSchedule()

	for key, rawDay := range raw.Days {
		day, err := ParseWeekday(key)
		if err != nil {
			// Лишние ключи от бэкенда не считаем дефектом - просто пропускаем
			continue
		}

		slots := make([]types.TimeOfDay, 0, len(rawDay.Slots))
		for _, s := range rawDay.Slots {
			slot, err := types.NewTimeOfDay(s)
			if err != nil {
				return nil, fmt.Errorf("day %s: %w", day, err)
			}
			slots = append(slots, slot)
		}

		schedule.Days[day] = DayAvailability{
			Active: rawDay.Active,
			Slots:  normalizeSlots(slots),
		}
	}

	lunch, err := normalizeLunchBreak(raw)
	if err != nil {
		return nil, err
	}
	schedule.LunchBreak = lunch

	if len(raw.Exceptions) > 0 {
		schedule.Exceptions = raw.Exceptions
	}

	return schedule, nil
}

// normalizeLunchBreak применяет дефолт 13:00-14:00, если хотя бы одна граница
// отсутствует; заданные границы обязаны быть валидными
func normalizeLunchBreak(raw RawSchedule) (LunchBreak, error) {
	if raw.LunchStart == "" || raw.LunchEnd == "" {
		return LunchBreak{Start: DefaultLunchStart, End: DefaultLunchEnd, Active: true}, nil
	}

	start, err := types.NewTimeOfDay(raw.LunchStart)
	if err != nil {
		return LunchBreak{}, fmt.Errorf("lunch start: %w", err)
	}

	end, err := types.NewTimeOfDay(raw.LunchEnd)
	if err != nil {
		return LunchBreak{}, fmt.Errorf("lunch end: %w", err)
	}

	active := true
	if raw.LunchActive != nil {
		active = *raw.LunchActive
	}

	return LunchBreak{Start: start, End: end, Active: active}, nil
}

// normalizeSlots убирает дубликаты и сортирует по времени (не лексикографически)
func normalizeSlots(slots []types.TimeOfDay) []types.TimeOfDay {
	seen := make(map[types.TimeOfDay]struct{}, len(slots))
	result := make([]types.TimeOfDay, 0, len(slots))

	for _, slot := range slots {
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		result = append(result, slot)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Minutes() < result[j].Minutes()
	})

	return result
}

// ToggleDayActive flips the active flag of the named day.
// Slots are deliberately left untouched: deactivating a day must not lose
// the barber's selection.
func (s *WeeklySchedule) ToggleDayActive(day Weekday) error {
	if !day.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
	}

	availability := s.Days[day]
	availability.Active = !availability.Active
	s.Days[day] = availability

	return nil
}

// ToggleSlot adds the slot to the day's selection if absent, removes it if
// present. The slot list stays unique and ascending in time order.
// Returns true when the slot ended up selected.
func (s *WeeklySchedule) ToggleSlot(day Weekday, slot types.TimeOfDay) (bool, error) {
	if !day.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
	}
	if !IsOnGrid(slot) {
		return false, fmt.Errorf("%w: %q", ErrSlotOffGrid, slot)
	}

	availability := s.Days[day]

	for i, existing := range availability.Slots {
		if existing == slot {
			availability.Slots = append(availability.Slots[:i], availability.Slots[i+1:]...)
			s.Days[day] = availability
			return false, nil
		}
	}

	availability.Slots = normalizeSlots(append(availability.Slots, slot))
	s.Days[day] = availability

	return true, nil
}

// HasSlot reports whether the slot is currently selected on the day
func (s *WeeklySchedule) HasSlot(day Weekday, slot types.TimeOfDay) bool {
	for _, existing := range s.Days[day].Slots {
		if existing == slot {
			return true
		}
	}
	return false
}

// RemoveSlot drops the slot from the day's selection if present.
// Used to strip occupied slots before persisting.
func (s *WeeklySchedule) RemoveSlot(day Weekday, slot types.TimeOfDay) {
	availability := s.Days[day]
	for i, existing := range availability.Slots {
		if existing == slot {
			availability.Slots = append(availability.Slots[:i], availability.Slots[i+1:]...)
			s.Days[day] = availability
			return
		}
	}
}

// Clone returns a deep copy of the schedule
func (s *WeeklySchedule) Clone() *WeeklySchedule {
	days := make(map[Weekday]DayAvailability, len(s.Days))
	for day, availability := range s.Days {
		slots := make([]types.TimeOfDay, len(availability.Slots))
		copy(slots, availability.Slots)
		days[day] = DayAvailability{Active: availability.Active, Slots: slots}
	}

	exceptions := make([]json.RawMessage, len(s.Exceptions))
	for i, exc := range s.Exceptions {
		cp := make(json.RawMessage, len(exc))
		copy(cp, exc)
		exceptions[i] = cp
	}

	return &WeeklySchedule{
		Days:       days,
		LunchBreak: s.LunchBreak,
		Exceptions: exceptions,
	}
}
