package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	loadScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/load_schedule"
	saveScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/save_schedule"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

// Service сервис сессий редактирования расписаний.
// Сессия живет в памяти процесса; одновременные правки одного барбера
// из разных сессий не реконсилируются - на бэкенде побеждает последняя
// запись (осознанное ограничение, см. DESIGN.md).
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*session

	loadUC LoadScheduleUseCase
	saveUC SaveScheduleUseCase

	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса редактора
func NewService(loadUC LoadScheduleUseCase, saveUC SaveScheduleUseCase, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		sessions:     make(map[string]*session),
		loadUC:       loadUC,
		saveUC:       saveUC,
		sessionTTL:   sessionTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Open открывает сессию редактирования: загружает расписание и записи
// на дату, нормализует и возвращает начальное состояние.
// Недоступность бэкенда не мешает открытию - сессия помечается degraded.
func (s *Service) Open(ctx context.Context, req *OpenRequest) (*SessionState, error) {
	s.logger.Info("Editor.Open: user=%d, barber=%d, date=%s",
		req.UserID, req.BarberID, req.Date.Format(domain.DateFormat))

	result, err := s.loadUC.Execute(ctx, &loadScheduleUC.Request{
		UserID:   req.UserID,
		BarberID: req.BarberID,
		Date:     req.Date,
	})
	if err != nil {
		if errors.Is(err, loadScheduleUC.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		s.logger.Error("Editor.Open: load failed for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	sess := &session{
		id:           uuid.NewString(),
		userID:       req.UserID,
		barberID:     req.BarberID,
		date:         req.Date,
		weekday:      result.Weekday,
		schedule:     result.Schedule,
		appointments: result.Appointments,
		degraded:     result.BackendDegraded,
		lastActive:   now,
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("Editor.Open: session=%s opened for barber=%d (degraded=%v)",
		sess.id, req.BarberID, sess.degraded)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return buildState(sess), nil
}

// ToggleDay переключает активность дня недели. Слоты дня не трогаются.
func (s *Service) ToggleDay(ref *SessionRef, dayKey string) (*SessionState, error) {
	sess, err := s.get(ref)
	if err != nil {
		return nil, err
	}

	day, err := domain.ParseWeekday(dayKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, dayKey)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.saving {
		return nil, ErrSaveInFlight
	}

	if err := sess.schedule.ToggleDayActive(day); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Editor.ToggleDay: session=%s, day=%s, active=%v",
		sess.id, day, sess.schedule.Days[day].Active)

	return buildState(sess), nil
}

// ToggleSlot переключает выбранность слота дня.
// Слот, занятый записью на дату сессии, невыбираем: попытка переключения -
// no-op для модели, возвращается ErrSlotOccupied.
func (s *Service) ToggleSlot(ref *SessionRef, dayKey string, slotStr string) (*SessionState, error) {
	sess, err := s.get(ref)
	if err != nil {
		return nil, err
	}

	day, err := domain.ParseWeekday(dayKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, dayKey)
	}

	slot, err := types.NewTimeOfDay(slotStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, slotStr)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.saving {
		return nil, ErrSaveInFlight
	}

	// Занятость известна для дня недели редактируемой даты
	if day == sess.weekday {
		if appointment := sess.occupiedAt(slot); appointment != nil {
			s.logger.Warn("Editor.ToggleSlot: session=%s, slot=%s occupied by %s - toggle ignored",
				sess.id, slot, appointment.ClientLabel())
			return nil, fmt.Errorf("%w: %s (%s, %s)",
				ErrSlotOccupied, slot, appointment.ClientLabel(), appointment.ServiceLabel())
		}
	}

	selected, err := sess.schedule.ToggleSlot(day, slot)
	if err != nil {
		if errors.Is(err, domain.ErrSlotOffGrid) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, slotStr)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Editor.ToggleSlot: session=%s, day=%s, slot=%s, selected=%v",
		sess.id, day, slot, selected)

	return buildState(sess), nil
}

// SetLunchBreak применяет частичную правку обеденного перерыва.
// Правило 1 (конец позже начала) проверяется на каждой правке: нарушающая
// правка отклоняется целиком, прежнее валидное значение сохраняется.
// Правило 2 (минимум 30 минут) проверяется только на сохранении.
func (s *Service) SetLunchBreak(ref *SessionRef, req *SetLunchBreakRequest) (*SessionState, error) {
	sess, err := s.get(ref)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.saving {
		return nil, ErrSaveInFlight
	}

	// Собираем кандидата из текущего значения и пришедших полей
	candidate := sess.schedule.LunchBreak

	if req.Start != nil {
		start, err := types.NewTimeOfDay(*req.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTime, *req.Start)
		}
		candidate.Start = start
	}

	if req.End != nil {
		end, err := types.NewTimeOfDay(*req.End)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTime, *req.End)
		}
		candidate.End = end
	}

	if req.Active != nil {
		candidate.Active = *req.Active
	}

	if err := candidate.ValidateOrder(); err != nil {
		s.logger.Warn("Editor.SetLunchBreak: session=%s rejected edit %s-%s: %v",
			sess.id, candidate.Start, candidate.End, err)
		return nil, fmt.Errorf("%w: %s-%s", ErrLunchOrder, candidate.Start, candidate.End)
	}

	sess.schedule.LunchBreak = candidate

	s.logger.Info("Editor.SetLunchBreak: session=%s, lunch=%s-%s, active=%v",
		sess.id, candidate.Start, candidate.End, candidate.Active)

	return buildState(sess), nil
}

// Save сохраняет расписание сессии в бэкенд одним атомарным PUT.
// На время сохранения сессия закрыта для мутаций. При неудаче локальное
// состояние НЕ откатывается - сессия остается открытой для повторной
// попытки (решение по открытому вопросу спеки, см. DESIGN.md).
func (s *Service) Save(ctx context.Context, ref *SessionRef) (*SessionState, error) {
	sess, err := s.get(ref)
	if err != nil {
		return nil, err
	}

	// Помечаем сессию сохраняющейся и снимаем снапшот под мьютексом,
	// сам PUT выполняется без блокировки
	sess.mu.Lock()
	if sess.saving {
		sess.mu.Unlock()
		return nil, ErrSaveInFlight
	}
	sess.saving = true
	snapshot := sess.schedule.Clone()
	sess.mu.Unlock()

	result, saveErr := s.saveUC.Execute(ctx, &saveScheduleUC.Request{
		UserID:   ref.UserID,
		BarberID: sess.barberID,
		Date:     sess.date,
		Schedule: snapshot,
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.saving = false

	if saveErr != nil {
		s.logger.Warn("Editor.Save: session=%s save failed: %v", sess.id, saveErr)
		return nil, s.mapSaveError(saveErr)
	}

	// Фиксируем фактически сохраненное состояние (занятые слоты вычищены)
	sess.schedule = result.Schedule
	savedAt := result.SavedAt
	sess.lastSavedAt = &savedAt

	s.logger.Info("Editor.Save: session=%s saved for barber=%d (stripped=%d)",
		sess.id, sess.barberID, len(result.StrippedSlots))

	return buildState(sess), nil
}

// Close закрывает сессию и освобождает ее состояние
func (s *Service) Close(ref *SessionRef) error {
	sess, err := s.get(ref)
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()

	s.logger.Info("Editor.Close: session=%s closed", sess.id)
	return nil
}

// RunCleanup периодически удаляет сессии, неактивные дольше TTL.
// Запускается в отдельной горутине; останавливается закрытием stopCh.
func (s *Service) RunCleanup(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-stopCh:
			return
		}
	}
}

// evictExpired удаляет истекшие сессии
func (s *Service) evictExpired() {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.mu.Lock()
		expired := !sess.saving && now.Sub(sess.lastActive) > s.sessionTTL
		sess.mu.Unlock()

		if expired {
			delete(s.sessions, id)
			s.logger.Info("Editor.evictExpired: session=%s expired", id)
		}
	}
}

// get находит сессию, проверяет владельца и продлевает TTL
func (s *Service) get(ref *SessionRef) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[ref.SessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if sess.userID != ref.UserID {
		s.logger.Warn("Editor: user=%d denied access to session=%s owned by user=%d",
			ref.UserID, ref.SessionID, sess.userID)
		return nil, ErrAccessDenied
	}

	sess.mu.Lock()
	sess.touch(s.timeProvider.Now())
	sess.mu.Unlock()

	return sess, nil
}

// mapSaveError транслирует ошибки use case сохранения в sentinel-ошибки сервиса
func (s *Service) mapSaveError(err error) error {
	switch {
	case errors.Is(err, saveScheduleUC.ErrLunchOrder):
		return fmt.Errorf("%w: %v", ErrLunchOrder, err)
	case errors.Is(err, saveScheduleUC.ErrLunchTooShort):
		return fmt.Errorf("%w: %v", ErrLunchTooShort, err)
	case errors.Is(err, saveScheduleUC.ErrBackendUnavailable):
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	case errors.Is(err, saveScheduleUC.ErrRejected):
		return fmt.Errorf("%w: %v", ErrSaveRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
