package barberbackend

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

// Horario модель расписания в формате бэкенда барбершопа.
// Ключи diasLaborales - испанские названия дней ("lunes".."domingo").
type Horario struct {
	DiasLaborales   map[string]DiaLaboral `json:"diasLaborales"`
	HorarioAlmuerzo *HorarioAlmuerzo      `json:"horarioAlmuerzo,omitempty"`
	Excepciones     []json.RawMessage     `json:"excepciones"`
}

// DiaLaboral доступность барбера в один день недели
type DiaLaboral struct {
	Activo bool     `json:"activo"`
	Horas  []string `json:"horas"`
}

// HorarioAlmuerzo интервал обеденного перерыва
type HorarioAlmuerzo struct {
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
	Activo *bool  `json:"activo,omitempty"`
}

// horarioEnvelope обертка ответа GET /barberos/{id}/horario
type horarioEnvelope struct {
	Horario *Horario `json:"horario"`
}

// Cita модель записи клиента из бэкенда.
// Времена могут приходить с секундами ("10:00:00") - они отбрасываются.
type Cita struct {
	Hora                   string       `json:"hora"`
	HoraFin                string       `json:"horaFin"`
	Cliente                *ClienteRef  `json:"cliente,omitempty"`
	Servicio               *ServicioRef `json:"servicio,omitempty"`
	PacienteTemporalNombre string       `json:"pacienteTemporalNombre,omitempty"`
}

// ClienteRef ссылка на клиента записи
type ClienteRef struct {
	Nombre string `json:"nombre"`
}

// ServicioRef ссылка на услугу записи
type ServicioRef struct {
	Nombre string `json:"nombre"`
}

// citasEnvelope обертка ответа GET /citas
type citasEnvelope struct {
	Citas []Cita `json:"citas"`
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToRawSchedule конвертирует ответ бэкенда в сырую доменную модель
// для последующей нормализации
func (h *Horario) ToRawSchedule() domain.RawSchedule {
	raw := domain.RawSchedule{
		Days:       make(map[string]domain.RawDayAvailability, len(h.DiasLaborales)),
		Exceptions: h.Excepciones,
	}

	for key, dia := range h.DiasLaborales {
		raw.Days[key] = domain.RawDayAvailability{
			Active: dia.Activo,
			Slots:  dia.Horas,
		}
	}

	if h.HorarioAlmuerzo != nil {
		raw.LunchStart = h.HorarioAlmuerzo.Inicio
		raw.LunchEnd = h.HorarioAlmuerzo.Fin
		raw.LunchActive = h.HorarioAlmuerzo.Activo
	}

	return raw
}

// FromDomainSchedule конвертирует каноничное расписание в формат бэкенда.
// Всегда сериализуем все 7 дней - частичных обновлений у бэкенда нет.
func FromDomainSchedule(schedule *domain.WeeklySchedule) *Horario {
	dias := make(map[string]DiaLaboral, len(domain.AllWeekdays))

	for _, day := range domain.AllWeekdays {
		availability := schedule.Days[day]

		horas := make([]string, len(availability.Slots))
		for i, slot := range availability.Slots {
			horas[i] = slot.String()
		}

		dias[day.String()] = DiaLaboral{
			Activo: availability.Active,
			Horas:  horas,
		}
	}

	activo := schedule.LunchBreak.Active
	excepciones := schedule.Exceptions
	if excepciones == nil {
		excepciones = []json.RawMessage{}
	}

	return &Horario{
		DiasLaborales: dias,
		HorarioAlmuerzo: &HorarioAlmuerzo{
			Inicio: schedule.LunchBreak.Start.String(),
			Fin:    schedule.LunchBreak.End.String(),
			Activo: &activo,
		},
		Excepciones: excepciones,
	}
}

// ToDomain конвертирует запись бэкенда в доменную модель.
// Имя walk-in клиента (pacienteTemporalNombre) используется, когда запись
// не привязана к зарегистрированному клиенту.
func (c *Cita) ToDomain() (domain.Appointment, error) {
	start, err := types.NewTimeOfDay(types.TruncateSeconds(c.Hora))
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("cita hora: %w", err)
	}

	end, err := types.NewTimeOfDay(types.TruncateSeconds(c.HoraFin))
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("cita horaFin: %w", err)
	}

	clientName := ""
	if c.Cliente != nil && c.Cliente.Nombre != "" {
		clientName = c.Cliente.Nombre
	} else if c.PacienteTemporalNombre != "" {
		clientName = c.PacienteTemporalNombre
	}

	serviceName := ""
	if c.Servicio != nil {
		serviceName = c.Servicio.Nombre
	}

	return domain.Appointment{
		Start:       start,
		End:         end,
		ClientName:  clientName,
		ServiceName: serviceName,
	}, nil
}
