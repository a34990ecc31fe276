package set_lunch_break

import (
	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

type EditorService interface {
	SetLunchBreak(ref *editor.SessionRef, req *editor.SetLunchBreakRequest) (*editor.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
