package save_schedule

import (
	"context"
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/internal/integrations/barberbackend"
)

// BarberBackendClient интерфейс клиента бэкенда барбершопа
type BarberBackendClient interface {
	FetchAppointments(ctx context.Context, barberID int64, date time.Time) ([]barberbackend.Cita, error)
	SaveSchedule(ctx context.Context, barberID int64, horario *barberbackend.Horario) error
}

// AuditRepository интерфейс журнала сохранений расписаний
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.ScheduleAuditEntry) (*domain.ScheduleAuditEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
