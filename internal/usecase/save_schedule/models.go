package save_schedule

import (
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

// Request модель запроса на сохранение расписания
type Request struct {
	UserID   int64 // ID пользователя, выполняющего сохранение
	BarberID int64 // ID барбера

	// Date дата редактируемого дня: перед сохранением слоты, занятые
	// записями на эту дату, вычищаются из выбранных
	Date time.Time

	// Schedule полное недельное расписание - частичных сохранений нет
	Schedule *domain.WeeklySchedule
}

// Response модель ответа после успешного сохранения
type Response struct {
	BarberID int64
	SavedAt  time.Time

	// Schedule фактически сохраненное расписание (после вычистки занятых слотов)
	Schedule *domain.WeeklySchedule

	// StrippedSlots слоты, убранные из выбранных из-за пересечения с записями
	StrippedSlots []types.TimeOfDay
}
