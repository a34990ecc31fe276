package editor

import (
	"context"
	"time"

	loadScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/load_schedule"
	saveScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/save_schedule"
)

// LoadScheduleUseCase интерфейс use case загрузки расписания
type LoadScheduleUseCase interface {
	Execute(ctx context.Context, req *loadScheduleUC.Request) (*loadScheduleUC.Response, error)
}

// SaveScheduleUseCase интерфейс use case сохранения расписания
type SaveScheduleUseCase interface {
	Execute(ctx context.Context, req *saveScheduleUC.Request) (*saveScheduleUC.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
