package get_schedule

import (
	"encoding/json"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	loadSchedule "github.com/m04kA/BMS-ScheduleService/internal/usecase/load_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	BarberID int64  `json:"barberId"`
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`

	Days       []DayResponse     `json:"days"`
	LunchBreak LunchBreak        `json:"lunchBreak"`
	DaySlots   []SlotResponse    `json:"daySlots"`
	Exceptions []json.RawMessage `json:"exceptions"`

	BackendDegraded bool `json:"backendDegraded"`
}

// DayResponse доступность одного дня недели
type DayResponse struct {
	Day    string   `json:"day"`
	Active bool     `json:"active"`
	Slots  []string `json:"slots"`
}

// LunchBreak обеденный перерыв
type LunchBreak struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

// SlotResponse статус одного слота сетки на запрошенную дату
type SlotResponse struct {
	Slot     string `json:"slot"`
	Selected bool   `json:"selected"`
	Occupied bool   `json:"occupied"`
	Client   string `json:"client,omitempty"`
	Service  string `json:"service,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loadSchedule.Response) *ScheduleResponse {
	days := make([]DayResponse, 0, len(domain.AllWeekdays))
	for _, day := range domain.AllWeekdays {
		availability := resp.Schedule.Days[day]

		slots := make([]string, len(availability.Slots))
		for i, slot := range availability.Slots {
			slots[i] = slot.String()
		}

		days = append(days, DayResponse{
			Day:    day.String(),
			Active: availability.Active,
			Slots:  slots,
		})
	}

	daySlots := make([]SlotResponse, len(resp.DaySlots))
	for i, status := range resp.DaySlots {
		daySlots[i] = SlotResponse{
			Slot:     status.Slot.String(),
			Selected: status.Selected,
			Occupied: status.Occupied,
		}
		if status.Appointment != nil {
			daySlots[i].Client = status.Appointment.ClientLabel()
			daySlots[i].Service = status.Appointment.ServiceLabel()
		}
	}

	exceptions := resp.Schedule.Exceptions
	if exceptions == nil {
		exceptions = []json.RawMessage{}
	}

	return &ScheduleResponse{
		BarberID: resp.BarberID,
		Date:     resp.Date.Format(domain.DateFormat),
		Weekday:  resp.Weekday.String(),
		Days:     days,
		LunchBreak: LunchBreak{
			Start:  resp.Schedule.LunchBreak.Start.String(),
			End:    resp.Schedule.LunchBreak.End.String(),
			Active: resp.Schedule.LunchBreak.Active,
		},
		DaySlots:        daySlots,
		Exceptions:      exceptions,
		BackendDegraded: resp.BackendDegraded,
	}
}
