package get_schedule_history

import (
	"context"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
)

type AuditRepository interface {
	ListByBarber(ctx context.Context, barberID int64, limit, offset uint64) ([]*domain.ScheduleAuditEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
