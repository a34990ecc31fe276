package editor

import (
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	loadScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/load_schedule"
)

// Request модели

// OpenRequest запрос на открытие сессии редактирования
type OpenRequest struct {
	UserID   int64
	BarberID int64
	Date     time.Time
}

// SessionRef ссылка на сессию с проверкой владельца
type SessionRef struct {
	SessionID string
	UserID    int64
}

// SetLunchBreakRequest частичная правка обеденного перерыва.
// Заданы только изменяемые поля; каждое значение времени в формате "HH:MM".
type SetLunchBreakRequest struct {
	Start  *string
	End    *string
	Active *bool
}

// Response модели

// SessionState снимок состояния сессии редактирования
type SessionState struct {
	SessionID string `json:"sessionId"`
	BarberID  int64  `json:"barberId"`
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`

	Days       []DayState      `json:"days"`
	LunchBreak LunchBreakState `json:"lunchBreak"`

	// DaySlots сетка слотов дня недели редактируемой даты с занятостью
	DaySlots []SlotState `json:"daySlots"`

	// BackendDegraded true, если сессия открыта на дефолтных данных
	// из-за недоступности бэкенда
	BackendDegraded bool `json:"backendDegraded"`

	Saving      bool       `json:"saving"`
	LastSavedAt *time.Time `json:"lastSavedAt,omitempty"`
}

// DayState состояние одного дня недели
type DayState struct {
	Day    string   `json:"day"`
	Active bool     `json:"active"`
	Slots  []string `json:"slots"`
}

// LunchBreakState состояние обеденного перерыва
type LunchBreakState struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

// SlotState состояние одного слота сетки на редактируемую дату
type SlotState struct {
	Slot     string `json:"slot"`
	Selected bool   `json:"selected"`
	Occupied bool   `json:"occupied"`

	// Подписи записи, занимающей слот (пустые для свободного слота)
	Client  string `json:"client,omitempty"`
	Service string `json:"service,omitempty"`
}

// buildState собирает снимок состояния сессии.
// Вызывается только под мьютексом сессии.
func buildState(s *session) *SessionState {
	days := make([]DayState, 0, len(domain.AllWeekdays))
	for _, day := range domain.AllWeekdays {
		availability := s.schedule.Days[day]

		slots := make([]string, len(availability.Slots))
		for i, slot := range availability.Slots {
			slots[i] = slot.String()
		}

		days = append(days, DayState{
			Day:    day.String(),
			Active: availability.Active,
			Slots:  slots,
		})
	}

	daySlots := make([]SlotState, 0, domain.SlotGridSize)
	for _, status := range loadScheduleUC.BuildDaySlots(s.schedule, s.weekday, s.appointments) {
		state := SlotState{
			Slot:     status.Slot.String(),
			Selected: status.Selected,
			Occupied: status.Occupied,
		}
		if status.Appointment != nil {
			state.Client = status.Appointment.ClientLabel()
			state.Service = status.Appointment.ServiceLabel()
		}
		daySlots = append(daySlots, state)
	}

	return &SessionState{
		SessionID: s.id,
		BarberID:  s.barberID,
		Date:      s.date.Format(domain.DateFormat),
		Weekday:   s.weekday.String(),
		Days:      days,
		LunchBreak: LunchBreakState{
			Start:  s.schedule.LunchBreak.Start.String(),
			End:    s.schedule.LunchBreak.End.String(),
			Active: s.schedule.LunchBreak.Active,
		},
		DaySlots:        daySlots,
		BackendDegraded: s.degraded,
		Saving:          s.saving,
		LastSavedAt:     s.lastSavedAt,
	}
}
