package save_session

import (
	"context"

	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

type EditorService interface {
	Save(ctx context.Context, ref *editor.SessionRef) (*editor.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
