package toggle_day

import (
	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

type EditorService interface {
	ToggleDay(ref *editor.SessionRef, dayKey string) (*editor.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
