package editor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	loadScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/load_schedule"
	saveScheduleUC "github.com/m04kA/BMS-ScheduleService/internal/usecase/save_schedule"
	"github.com/m04kA/BMS-ScheduleService/pkg/ptr"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeLoadUC struct {
	resp *loadScheduleUC.Response
	err  error
}

func (f *fakeLoadUC) Execute(_ context.Context, req *loadScheduleUC.Request) (*loadScheduleUC.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	resp := *f.resp
	resp.BarberID = req.BarberID
	resp.Date = req.Date
	return &resp, nil
}

type fakeSaveUC struct {
	err   error
	calls int
	last  *saveScheduleUC.Request

	// блокировка для проверки save-in-flight
	started  chan struct{}
	release  chan struct{}
	blocking bool
}

func (f *fakeSaveUC) Execute(_ context.Context, req *saveScheduleUC.Request) (*saveScheduleUC.Response, error) {
	f.calls++
	f.last = req
	if f.blocking {
		close(f.started)
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &saveScheduleUC.Response{
		BarberID: req.BarberID,
		SavedAt:  time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC),
		Schedule: req.Schedule,
	}, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

// 2026-09-07 - понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func loadResponse() *loadScheduleUC.Response {
	schedule := domain.NewDefaultSchedule()
	appointments := []domain.Appointment{
		{Start: "10:00", End: "11:00", ClientName: "Carlos", ServiceName: "Corte"},
	}
	return &loadScheduleUC.Response{
		Weekday:      domain.Monday,
		Schedule:     schedule,
		Appointments: appointments,
		DaySlots:     loadScheduleUC.BuildDaySlots(schedule, domain.Monday, appointments),
	}
}

func newTestService(saveUC *fakeSaveUC) *Service {
	return NewService(&fakeLoadUC{resp: loadResponse()}, saveUC, 30*time.Minute, nopLogger{})
}

func openSession(t *testing.T, svc *Service) *SessionState {
	t.Helper()
	state, err := svc.Open(context.Background(), &OpenRequest{UserID: 1, BarberID: 7, Date: testDate})
	require.NoError(t, err)
	return state
}

func TestOpen(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)

	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, int64(7), state.BarberID)
	assert.Equal(t, "lunes", state.Weekday)
	require.Len(t, state.Days, 7)
	require.Len(t, state.DaySlots, domain.SlotGridSize)
	assert.Equal(t, "13:00", state.LunchBreak.Start)
	assert.Equal(t, "14:00", state.LunchBreak.End)
}

func TestToggleDay(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	state, err := svc.ToggleDay(ref, "martes")
	require.NoError(t, err)
	assert.True(t, dayState(t, state, "martes").Active)

	state, err = svc.ToggleDay(ref, "martes")
	require.NoError(t, err)
	assert.False(t, dayState(t, state, "martes").Active)

	_, err = svc.ToggleDay(ref, "froday")
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestToggleSlot(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	state, err := svc.ToggleSlot(ref, "lunes", "09:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, dayState(t, state, "lunes").Slots)

	state, err = svc.ToggleSlot(ref, "lunes", "09:00")
	require.NoError(t, err)
	assert.Empty(t, dayState(t, state, "lunes").Slots)
}

func TestToggleSlot_OccupiedIsNoOp(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	// 10:30 внутри записи 10:00-11:00 на понедельник
	_, err := svc.ToggleSlot(ref, "lunes", "10:30")
	require.ErrorIs(t, err, ErrSlotOccupied)

	// Модель не изменилась
	after, err := svc.ToggleDay(ref, "martes")
	require.NoError(t, err)
	assert.Empty(t, dayState(t, after, "lunes").Slots)

	// Тот же слот в другой день недели свободен - занятость известна
	// только для дня редактируемой даты
	_, err = svc.ToggleSlot(ref, "martes", "10:30")
	require.NoError(t, err)
}

func TestToggleSlot_Invalid(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	_, err := svc.ToggleSlot(ref, "lunes", "9am")
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = svc.ToggleSlot(ref, "lunes", "07:30")
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSetLunchBreak_RejectAndRetain(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	// Правка, нарушающая порядок, отклоняется целиком
	_, err := svc.SetLunchBreak(ref, &SetLunchBreakRequest{Start: ptr.Ptr("15:00")})
	require.ErrorIs(t, err, ErrLunchOrder)

	// Прежнее валидное значение сохранено
	after, err := svc.ToggleDay(ref, "martes")
	require.NoError(t, err)
	assert.Equal(t, "13:00", after.LunchBreak.Start)
	assert.Equal(t, "14:00", after.LunchBreak.End)

	// Валидная частичная правка применяется
	after, err = svc.SetLunchBreak(ref, &SetLunchBreakRequest{End: ptr.Ptr("15:00"), Active: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "15:00", after.LunchBreak.End)
	assert.False(t, after.LunchBreak.Active)
}

func TestSetLunchBreak_ShortIntervalAllowedUntilSave(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	// 15 минут нарушает только правило минимальной длительности,
	// которое проверяется при сохранении, а не при правке
	after, err := svc.SetLunchBreak(ref, &SetLunchBreakRequest{End: ptr.Ptr("13:15")})
	require.NoError(t, err)
	assert.Equal(t, "13:15", after.LunchBreak.End)
}

func TestSave(t *testing.T) {
	saveUC := &fakeSaveUC{}
	svc := newTestService(saveUC)
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	_, err := svc.ToggleSlot(ref, "lunes", "09:00")
	require.NoError(t, err)

	after, err := svc.Save(context.Background(), ref)
	require.NoError(t, err)

	assert.Equal(t, 1, saveUC.calls)
	assert.Equal(t, int64(7), saveUC.last.BarberID)
	assert.Equal(t, []types.TimeOfDay{"09:00"}, saveUC.last.Schedule.Days[domain.Monday].Slots)

	require.NotNil(t, after.LastSavedAt)
	assert.False(t, after.Saving)
}

func TestSave_FailureKeepsSessionState(t *testing.T) {
	saveUC := &fakeSaveUC{err: saveScheduleUC.ErrBackendUnavailable}
	svc := newTestService(saveUC)
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	_, err := svc.ToggleSlot(ref, "lunes", "09:00")
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), ref)
	require.ErrorIs(t, err, ErrBackendUnavailable)

	// Локальная правка не откатилась, сессия открыта для повтора
	after, err := svc.ToggleDay(ref, "martes")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, dayState(t, after, "lunes").Slots)
	assert.Nil(t, after.LastSavedAt)
}

func TestSave_InFlightBlocksMutations(t *testing.T) {
	saveUC := &fakeSaveUC{
		blocking: true,
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	svc := newTestService(saveUC)
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Save(context.Background(), ref)
		done <- err
	}()

	<-saveUC.started

	_, err := svc.ToggleSlot(ref, "lunes", "09:00")
	assert.ErrorIs(t, err, ErrSaveInFlight)

	_, err = svc.SetLunchBreak(ref, &SetLunchBreakRequest{End: ptr.Ptr("15:00")})
	assert.ErrorIs(t, err, ErrSaveInFlight)

	_, err = svc.Save(context.Background(), ref)
	assert.ErrorIs(t, err, ErrSaveInFlight)

	close(saveUC.release)
	require.NoError(t, <-done)

	// После завершения сохранения мутации снова доступны
	_, err = svc.ToggleSlot(ref, "lunes", "09:00")
	require.NoError(t, err)
}

func TestAccessControl(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)

	_, err := svc.ToggleDay(&SessionRef{SessionID: state.SessionID, UserID: 99}, "lunes")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ToggleDay(&SessionRef{SessionID: "missing", UserID: 1}, "lunes")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCloseSession(t *testing.T) {
	svc := newTestService(&fakeSaveUC{})
	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	require.NoError(t, svc.Close(ref))

	_, err := svc.ToggleDay(ref, "lunes")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEvictExpired(t *testing.T) {
	clock := &fixedTime{now: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(&fakeSaveUC{})
	svc.timeProvider = clock

	state := openSession(t, svc)
	ref := &SessionRef{SessionID: state.SessionID, UserID: 1}

	// До истечения TTL сессия живет
	clock.now = clock.now.Add(29 * time.Minute)
	svc.evictExpired()
	_, err := svc.ToggleDay(ref, "lunes")
	require.NoError(t, err)

	// ToggleDay продлил TTL; двигаемся за его пределы
	clock.now = clock.now.Add(31 * time.Minute)
	svc.evictExpired()
	_, err = svc.ToggleDay(ref, "lunes")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func dayState(t *testing.T, state *SessionState, day string) DayState {
	t.Helper()
	for _, d := range state.Days {
		if d.Day == day {
			return d
		}
	}
	t.Fatalf("day %s not found in state", day)
	return DayState{}
}
