package close_session

import (
	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

type EditorService interface {
	Close(ref *editor.SessionRef) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
