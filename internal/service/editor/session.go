package editor

import (
	"sync"
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

// session одна сессия редактирования расписания: один барбер, одна дата,
// один владелец. Все мутации сериализуются мьютексом - исходная модель
// редактора однопоточная, HTTP-поверхности нужен эквивалентный барьер.
type session struct {
	id       string
	userID   int64
	barberID int64
	date     time.Time
	weekday  domain.Weekday

	mu sync.Mutex

	schedule     *domain.WeeklySchedule
	appointments []domain.Appointment

	// saving true, пока выполняется PUT в бэкенд: все мутации отклоняются,
	// чтобы локальная правка не обогнала улетевшее на сохранение состояние
	saving bool

	// degraded true, если сессия открыта на дефолтных данных
	// из-за недоступности бэкенда
	degraded bool

	lastSavedAt *time.Time
	lastActive  time.Time
}

// occupiedAt возвращает запись, занимающую слот на редактируемую дату.
// Занятость известна ровно для дня недели даты сессии.
// Вызывается только под мьютексом сессии.
func (s *session) occupiedAt(slot types.TimeOfDay) *domain.Appointment {
	return domain.OccupiedSlot(slot, s.appointments)
}

// touch обновляет время последней активности для TTL-очистки
func (s *session) touch(now time.Time) {
	s.lastActive = now
}
