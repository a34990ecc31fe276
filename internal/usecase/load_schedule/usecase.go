package load_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	backendClient "github.com/m04kA/BMS-ScheduleService/internal/integrations/barberbackend"
)

// UseCase use case загрузки расписания барбера с занятостью слотов
type UseCase struct {
	backend BarberBackendClient
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backend BarberBackendClient, logger Logger) *UseCase {
	return &UseCase{
		backend: backend,
		logger:  logger,
	}
}

// Execute выполняет use case загрузки расписания
//
// Политика деградации (как и в остальных интеграциях): недоступность бэкенда
// не роняет загрузку - возвращается дефолтное расписание / пустые записи
// с флагом BackendDegraded, чтобы UI показал ошибку, но редактор открылся.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LoadSchedule: user=%d, barber=%d, date=%s",
		req.UserID, req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("LoadSchedule: validation failed: %v", err)
		return nil, err
	}

	degraded := false

	// 2. Получаем сохраненное расписание
	schedule, err := uc.fetchSchedule(ctx, req.BarberID, &degraded)
	if err != nil {
		return nil, err
	}

	// 3. Получаем записи на запрошенную дату
	appointments, err := uc.fetchAppointments(ctx, req, &degraded)
	if err != nil {
		return nil, err
	}

	// 4. Считаем занятость сетки для дня недели запрошенной даты
	weekday := domain.WeekdayFromTime(req.Date)
	daySlots := BuildDaySlots(schedule, weekday, appointments)

	uc.logger.Info("LoadSchedule: barber=%d, date=%s, weekday=%s, appointments=%d, degraded=%v",
		req.BarberID, req.Date.Format(domain.DateFormat), weekday, len(appointments), degraded)

	return &Response{
		BarberID:        req.BarberID,
		Date:            req.Date,
		Weekday:         weekday,
		Schedule:        schedule,
		Appointments:    appointments,
		DaySlots:        daySlots,
		BackendDegraded: degraded,
	}, nil
}

// fetchSchedule получает и нормализует расписание.
// Отсутствие расписания - штатный случай (дефолт), недоступность бэкенда -
// деградация до дефолта с флагом.
func (uc *UseCase) fetchSchedule(ctx context.Context, barberID int64, degraded *bool) (*domain.WeeklySchedule, error) {
	horario, err := uc.backend.FetchSchedule(ctx, barberID)
	if err != nil {
		if errors.Is(err, backendClient.ErrScheduleNotFound) {
			uc.logger.Info("LoadSchedule: barber=%d has no stored schedule, using default", barberID)
			return domain.NewDefaultSchedule(), nil
		}
		if errors.Is(err, backendClient.ErrUnavailable) {
			uc.logger.Error("LoadSchedule: backend unavailable for barber=%d, degrading to default schedule: %v", barberID, err)
			*degraded = true
			return domain.NewDefaultSchedule(), nil
		}
		uc.logger.Error("LoadSchedule: failed to fetch schedule for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to fetch schedule: %v", ErrInternal, err)
	}

	schedule, err := domain.NormalizeSchedule(horario.ToRawSchedule())
	if err != nil {
		uc.logger.Error("LoadSchedule: malformed schedule data for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackendData, err)
	}

	return schedule, nil
}

// fetchAppointments получает записи на дату и конвертирует их в доменную модель
func (uc *UseCase) fetchAppointments(ctx context.Context, req *Request, degraded *bool) ([]domain.Appointment, error) {
	citas, err := uc.backend.FetchAppointments(ctx, req.BarberID, req.Date)
	if err != nil {
		if errors.Is(err, backendClient.ErrUnavailable) {
			uc.logger.Error("LoadSchedule: backend unavailable for appointments barber=%d, degrading to empty list: %v",
				req.BarberID, err)
			*degraded = true
			return []domain.Appointment{}, nil
		}
		uc.logger.Error("LoadSchedule: failed to fetch appointments for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	appointments := make([]domain.Appointment, 0, len(citas))
	for _, cita := range citas {
		appointment, err := cita.ToDomain()
		if err != nil {
			uc.logger.Error("LoadSchedule: malformed cita for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidBackendData, err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
