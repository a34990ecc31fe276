package save_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/internal/integrations/barberbackend"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBackend struct {
	citas    []barberbackend.Cita
	citasErr error

	saveErr   error
	saveCalls int
	saved     *barberbackend.Horario
}

func (f *fakeBackend) FetchAppointments(_ context.Context, _ int64, _ time.Time) ([]barberbackend.Cita, error) {
	return f.citas, f.citasErr
}

func (f *fakeBackend) SaveSchedule(_ context.Context, _ int64, horario *barberbackend.Horario) error {
	f.saveCalls++
	f.saved = horario
	return f.saveErr
}

type fakeAuditRepo struct {
	entries   []*domain.ScheduleAuditEntry
	createErr error
}

func (f *fakeAuditRepo) Create(_ context.Context, entry *domain.ScheduleAuditEntry) (*domain.ScheduleAuditEntry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

// 2026-09-07 - понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	schedule := domain.NewDefaultSchedule()
	schedule.Days[domain.Monday] = domain.DayAvailability{
		Active: true,
		Slots:  []types.TimeOfDay{"09:00", "09:30"},
	}
	return &Request{
		UserID:   1,
		BarberID: 7,
		Date:     testDate,
		Schedule: schedule,
	}
}

func TestExecute_SavesSchedule(t *testing.T) {
	backend := &fakeBackend{}
	audit := &fakeAuditRepo{}

	uc := NewUseCase(backend, audit, nopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, 1, backend.saveCalls, "exactly one atomic PUT")
	require.NotNil(t, backend.saved)
	require.Len(t, backend.saved.DiasLaborales, 7, "all seven days are always serialized")

	lunes := backend.saved.DiasLaborales["lunes"]
	assert.True(t, lunes.Activo)
	assert.Equal(t, []string{"09:00", "09:30"}, lunes.Horas)

	require.NotNil(t, backend.saved.HorarioAlmuerzo)
	assert.Equal(t, "13:00", backend.saved.HorarioAlmuerzo.Inicio)
	assert.Equal(t, "14:00", backend.saved.HorarioAlmuerzo.Fin)

	assert.Empty(t, resp.StrippedSlots)
	assert.False(t, resp.SavedAt.IsZero())

	require.Len(t, audit.entries, 1)
	assert.Equal(t, int64(7), audit.entries[0].BarberID)
	assert.Equal(t, int64(1), audit.entries[0].UserID)
}

func TestExecute_StripsOccupiedSlots(t *testing.T) {
	backend := &fakeBackend{
		citas: []barberbackend.Cita{{Hora: "09:00", HoraFin: "09:30"}},
	}

	uc := NewUseCase(backend, nil, nopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []types.TimeOfDay{"09:00"}, resp.StrippedSlots)
	assert.Equal(t, []string{"09:30"}, backend.saved.DiasLaborales["lunes"].Horas,
		"occupied slot must not reach the backend; 09:30 at the appointment end stays")
	assert.Equal(t, []types.TimeOfDay{"09:30"}, resp.Schedule.Days[domain.Monday].Slots)
}

func TestExecute_LunchOrderViolation_AbortsBeforeBackend(t *testing.T) {
	backend := &fakeBackend{}

	req := validRequest()
	req.Schedule.LunchBreak = domain.LunchBreak{Start: "14:00", End: "13:00", Active: true}

	uc := NewUseCase(backend, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrLunchOrder)
	assert.Equal(t, 0, backend.saveCalls, "violating save must not reach the backend")
}

func TestExecute_LunchTooShort_Aborts(t *testing.T) {
	backend := &fakeBackend{}

	req := validRequest()
	req.Schedule.LunchBreak = domain.LunchBreak{Start: "13:00", End: "13:15", Active: true}

	uc := NewUseCase(backend, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrLunchTooShort)
	assert.Equal(t, 0, backend.saveCalls)
}

func TestExecute_BackendUnavailable(t *testing.T) {
	backend := &fakeBackend{saveErr: barberbackend.ErrUnavailable}
	audit := &fakeAuditRepo{}

	uc := NewUseCase(backend, audit, nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Empty(t, audit.entries, "no audit entry for a failed save")
}

func TestExecute_AppointmentsUnavailable_IsFatal(t *testing.T) {
	backend := &fakeBackend{citasErr: barberbackend.ErrUnavailable}

	uc := NewUseCase(backend, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, 0, backend.saveCalls,
		"without occupancy the save cannot guarantee occupied slots are stripped")
}

func TestExecute_BackendRejected(t *testing.T) {
	backend := &fakeBackend{saveErr: barberbackend.ErrRejected}

	uc := NewUseCase(backend, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRejected)
}

func TestExecute_AuditFailureDoesNotFailSave(t *testing.T) {
	backend := &fakeBackend{}
	audit := &fakeAuditRepo{createErr: errors.New("db down")}

	uc := NewUseCase(backend, audit, nopLogger{})
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err, "journal is best effort, the PUT already succeeded")
	assert.NotNil(t, resp)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBackend{}, nil, nopLogger{})

	req := validRequest()
	req.UserID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Schedule = nil
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	delete(req.Schedule.Days, domain.Sunday)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
