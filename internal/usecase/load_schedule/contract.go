package load_schedule

import (
	"context"
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/integrations/barberbackend"
)

// BarberBackendClient интерфейс клиента бэкенда барбершопа
type BarberBackendClient interface {
	FetchSchedule(ctx context.Context, barberID int64) (*barberbackend.Horario, error)
	FetchAppointments(ctx context.Context, barberID int64, date time.Time) ([]barberbackend.Cita, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
