package toggle_slot

import (
	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

type EditorService interface {
	ToggleSlot(ref *editor.SessionRef, dayKey string, slot string) (*editor.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
