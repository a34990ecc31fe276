package get_schedule

import (
	"context"

	loadSchedule "github.com/m04kA/BMS-ScheduleService/internal/usecase/load_schedule"
)

type LoadScheduleUseCase interface {
	Execute(ctx context.Context, req *loadSchedule.Request) (*loadSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
