package update_schedule

import (
	"encoding/json"
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	saveSchedule "github.com/m04kA/BMS-ScheduleService/internal/usecase/save_schedule"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	// Date дата редактируемого дня (YYYY-MM-DD) - для вычистки занятых слотов
	Date string `json:"date"`

	Days       map[string]DayRequest `json:"days"`
	LunchBreak *LunchBreakRequest    `json:"lunchBreak,omitempty"`
	Exceptions []json.RawMessage     `json:"exceptions,omitempty"`
}

// DayRequest доступность одного дня недели
type DayRequest struct {
	Active bool     `json:"active"`
	Slots  []string `json:"slots"`
}

// LunchBreakRequest обеденный перерыв
type LunchBreakRequest struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active *bool  `json:"active,omitempty"`
}

// UpdateScheduleResponse HTTP response model
type UpdateScheduleResponse struct {
	BarberID int64  `json:"barberId"`
	SavedAt  string `json:"savedAt"`

	// StrippedSlots слоты, убранные перед сохранением из-за записей
	StrippedSlots []string `json:"strippedSlots"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case.
// Тело нормализуется так же, как данные бэкенда: семь дней, отсортированные
// слоты, дефолтный обед при отсутствии границ.
func (r *UpdateScheduleRequest) ToUseCaseRequest(userID, barberID int64) (*saveSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	raw := domain.RawSchedule{
		Days:       make(map[string]domain.RawDayAvailability, len(r.Days)),
		Exceptions: r.Exceptions,
	}

	for key, day := range r.Days {
		raw.Days[key] = domain.RawDayAvailability{
			Active: day.Active,
			Slots:  day.Slots,
		}
	}

	if r.LunchBreak != nil {
		raw.LunchStart = r.LunchBreak.Start
		raw.LunchEnd = r.LunchBreak.End
		raw.LunchActive = r.LunchBreak.Active
	}

	schedule, err := domain.NormalizeSchedule(raw)
	if err != nil {
		return nil, err
	}

	return &saveSchedule.Request{
		UserID:   userID,
		BarberID: barberID,
		Date:     date,
		Schedule: schedule,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveSchedule.Response) *UpdateScheduleResponse {
	stripped := make([]string, len(resp.StrippedSlots))
	for i, slot := range resp.StrippedSlots {
		stripped[i] = slot.String()
	}

	return &UpdateScheduleResponse{
		BarberID:      resp.BarberID,
		SavedAt:       resp.SavedAt.UTC().Format(time.RFC3339),
		StrippedSlots: stripped,
	}
}
