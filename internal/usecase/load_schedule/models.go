package load_schedule

import (
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

// Request модель запроса на загрузку расписания
type Request struct {
	UserID   int64     // ID пользователя (для логирования, не влияет на результат)
	BarberID int64     // ID барбера
	Date     time.Time // Дата, для которой считается занятость слотов
}

// Response модель ответа с расписанием и занятостью слотов на дату
type Response struct {
	BarberID int64
	Date     time.Time
	Weekday  domain.Weekday

	// Schedule каноничное недельное расписание (дефолтное, если не сохранено)
	Schedule *domain.WeeklySchedule

	// Appointments записи барбера на запрошенную дату
	Appointments []domain.Appointment

	// DaySlots полная сетка слотов для дня недели запрошенной даты,
	// с признаками выбранности и занятости
	DaySlots []SlotStatus

	// BackendDegraded true, если бэкенд был недоступен и ответ построен
	// на дефолтном расписании / пустом списке записей.
	// Вызывающий код обязан показать пользователю ошибку.
	BackendDegraded bool
}

// SlotStatus статус одного слота сетки на конкретную дату
type SlotStatus struct {
	Slot     types.TimeOfDay
	Selected bool // Слот отмечен барбером как доступный
	Occupied bool // Слот перекрыт существующей записью

	// Appointment запись, занимающая слот (nil, если слот свободен)
	Appointment *domain.Appointment
}

// BuildDaySlots строит статусы всей сетки слотов для одного дня:
// выбранность берется из расписания, занятость - из записей на дату.
// Занятый слот никогда не интерактивен для пользователя, независимо от
// того, был ли он ранее выбран.
func BuildDaySlots(schedule *domain.WeeklySchedule, day domain.Weekday, appointments []domain.Appointment) []SlotStatus {
	grid := domain.SlotGrid()
	slots := make([]SlotStatus, len(grid))

	for i, slot := range grid {
		occupant := domain.OccupiedSlot(slot, appointments)
		slots[i] = SlotStatus{
			Slot:        slot,
			Selected:    schedule.HasSlot(day, slot),
			Occupied:    occupant != nil,
			Appointment: occupant,
		}
	}

	return slots
}
