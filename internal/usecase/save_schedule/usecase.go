package save_schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	backendClient "github.com/m04kA/BMS-ScheduleService/internal/integrations/barberbackend"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

// UseCase use case сохранения расписания барбера
type UseCase struct {
	backend   BarberBackendClient
	auditRepo AuditRepository // nil, если журнал выключен
	logger    Logger
}

// NewUseCase создает новый экземпляр use case.
// auditRepo может быть nil - тогда сохранения не журналируются.
func NewUseCase(backend BarberBackendClient, auditRepo AuditRepository, logger Logger) *UseCase {
	return &UseCase{
		backend:   backend,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Execute выполняет use case сохранения расписания
//
// Порядок строгий: сначала оба правила обеда (любое нарушение прерывает
// сохранение до обращения к бэкенду), затем вычистка занятых слотов,
// затем один атомарный PUT. Журнал пишется только после успешного PUT
// и не влияет на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveSchedule: user=%d, barber=%d, date=%s",
		req.UserID, req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Правила обеденного перерыва (правило 1 + правило 2)
	if err := validateLunchBreak(req.Schedule.LunchBreak); err != nil {
		uc.logger.Warn("SaveSchedule: lunch break validation failed for barber=%d: %v", req.BarberID, err)
		return nil, err
	}

	// 3. Получаем записи на дату - занятые слоты не должны уехать в бэкенд
	// как доступность
	appointments, err := uc.fetchAppointments(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Вычищаем занятые слоты из выбранных (только день недели даты -
	// занятость известна ровно для одного календарного дня)
	schedule := req.Schedule.Clone()
	stripped := stripOccupiedSlots(schedule, domain.WeekdayFromTime(req.Date), appointments)
	if len(stripped) > 0 {
		uc.logger.Warn("SaveSchedule: stripped %d occupied slots for barber=%d: %v",
			len(stripped), req.BarberID, stripped)
	}

	// 5. Сохраняем одним атомарным PUT
	horario := backendClient.FromDomainSchedule(schedule)
	if err := uc.backend.SaveSchedule(ctx, req.BarberID, horario); err != nil {
		switch {
		case errors.Is(err, backendClient.ErrUnavailable):
			uc.logger.Error("SaveSchedule: backend unavailable for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		case errors.Is(err, backendClient.ErrRejected):
			uc.logger.Warn("SaveSchedule: backend rejected save for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		default:
			uc.logger.Error("SaveSchedule: failed to save schedule for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: failed to save schedule: %v", ErrInternal, err)
		}
	}

	savedAt := time.Now()
	uc.logger.Info("SaveSchedule: schedule saved for barber=%d by user=%d", req.BarberID, req.UserID)

	// 6. Журналируем успешное сохранение (best effort)
	uc.writeAudit(ctx, req, horario, savedAt)

	return &Response{
		BarberID:      req.BarberID,
		SavedAt:       savedAt,
		Schedule:      schedule,
		StrippedSlots: stripped,
	}, nil
}

// fetchAppointments получает записи на дату редактирования.
// Недоступность бэкенда здесь фатальна: без занятости нельзя гарантировать,
// что занятые слоты не будут сохранены как доступность.
func (uc *UseCase) fetchAppointments(ctx context.Context, req *Request) ([]domain.Appointment, error) {
	citas, err := uc.backend.FetchAppointments(ctx, req.BarberID, req.Date)
	if err != nil {
		if errors.Is(err, backendClient.ErrUnavailable) {
			uc.logger.Error("SaveSchedule: backend unavailable fetching appointments for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("SaveSchedule: failed to fetch appointments for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	appointments := make([]domain.Appointment, 0, len(citas))
	for _, cita := range citas {
		appointment, err := cita.ToDomain()
		if err != nil {
			uc.logger.Error("SaveSchedule: malformed cita for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: malformed appointment data: %v", ErrInternal, err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

// stripOccupiedSlots убирает из выбранных слотов дня те, что перекрыты
// записями, и возвращает список убранных
func stripOccupiedSlots(schedule *domain.WeeklySchedule, day domain.Weekday, appointments []domain.Appointment) []types.TimeOfDay {
	var stripped []types.TimeOfDay

	for _, slot := range schedule.Days[day].Slots {
		if domain.OccupiedSlot(slot, appointments) != nil {
			stripped = append(stripped, slot)
		}
	}

	for _, slot := range stripped {
		schedule.RemoveSlot(day, slot)
	}

	return stripped
}

// writeAudit пишет запись в журнал сохранений.
// Ошибка журнала не откатывает сохранение - PUT уже прошел.
func (uc *UseCase) writeAudit(ctx context.Context, req *Request, horario *backendClient.Horario, savedAt time.Time) {
	if uc.auditRepo == nil {
		return
	}

	payload, err := json.Marshal(horario)
	if err != nil {
		uc.logger.Error("SaveSchedule: failed to marshal audit payload for barber=%d: %v", req.BarberID, err)
		return
	}

	entry := &domain.ScheduleAuditEntry{
		BarberID: req.BarberID,
		UserID:   req.UserID,
		Payload:  payload,
		SavedAt:  savedAt,
	}

	if _, err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.logger.Error("SaveSchedule: failed to write audit entry for barber=%d: %v", req.BarberID, err)
		return
	}

	uc.logger.Info("SaveSchedule: audit entry written for barber=%d", req.BarberID)
}
