package load_schedule

import (
	"context"
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
	horario    *barberbackend.Horario
	horarioErr error

	citas    []barberbackend.Cita
	citasErr error
}

func (f *fakeBackend) FetchSchedule(_ context.Context, _ int64) (*barberbackend.Horario, error) {
	return f.horario, f.horarioErr
}

func (f *fakeBackend) FetchAppointments(_ context.Context, _ int64, _ time.Time) ([]barberbackend.Cita, error) {
	return f.citas, f.citasErr
}

// 2026-09-07 - понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestExecute_StoredSchedule(t *testing.T) {
	backend := &fakeBackend{
		horario: &barberbackend.Horario{
			DiasLaborales: map[string]barberbackend.DiaLaboral{
				"lunes": {Activo: true, Horas: []string{"10:00", "09:00"}},
			},
			HorarioAlmuerzo: &barberbackend.HorarioAlmuerzo{Inicio: "12:00", Fin: "13:00"},
		},
		citas: []barberbackend.Cita{
			{Hora: "10:00:00", HoraFin: "10:30:00", Cliente: &barberbackend.ClienteRef{Nombre: "Carlos"}},
		},
	}

	uc := NewUseCase(backend, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, BarberID: 7, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, domain.Monday, resp.Weekday)
	assert.False(t, resp.BackendDegraded)
	assert.Equal(t,
		[]types.TimeOfDay{"09:00", "10:00"},
		resp.Schedule.Days[domain.Monday].Slots,
		"slots must come back sorted")
	assert.Equal(t, types.TimeOfDay("12:00"), resp.Schedule.LunchBreak.Start)

	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, types.TimeOfDay("10:00"), resp.Appointments[0].Start, "seconds must be truncated")

	require.Len(t, resp.DaySlots, domain.SlotGridSize)
	for _, status := range resp.DaySlots {
		switch status.Slot {
		case "09:00":
			assert.True(t, status.Selected)
			assert.False(t, status.Occupied)
		case "10:00":
			assert.True(t, status.Selected)
			assert.True(t, status.Occupied)
			require.NotNil(t, status.Appointment)
			assert.Equal(t, "Carlos", status.Appointment.ClientName)
		case "10:30":
			assert.False(t, status.Occupied, "slot at appointment end is free")
		}
	}
}

func TestExecute_NoStoredSchedule_UsesDefault(t *testing.T) {
	backend := &fakeBackend{horarioErr: barberbackend.ErrScheduleNotFound}

	uc := NewUseCase(backend, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, BarberID: 7, Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.BackendDegraded, "missing schedule is not a degradation")
	for _, day := range domain.AllWeekdays {
		assert.False(t, resp.Schedule.Days[day].Active)
		assert.Empty(t, resp.Schedule.Days[day].Slots)
	}
	assert.Equal(t, domain.DefaultLunchStart, resp.Schedule.LunchBreak.Start)
	assert.Equal(t, domain.DefaultLunchEnd, resp.Schedule.LunchBreak.End)
}

func TestExecute_BackendUnavailable_Degrades(t *testing.T) {
	backend := &fakeBackend{
		horarioErr: barberbackend.ErrUnavailable,
		citasErr:   barberbackend.ErrUnavailable,
	}

	uc := NewUseCase(backend, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, BarberID: 7, Date: testDate})
	require.NoError(t, err, "unavailability must not fail the load")

	assert.True(t, resp.BackendDegraded)
	assert.Empty(t, resp.Appointments)
	assert.Equal(t, domain.DefaultLunchStart, resp.Schedule.LunchBreak.Start)
}

func TestExecute_AppointmentsUnavailable_DegradesToEmpty(t *testing.T) {
	backend := &fakeBackend{
		horario:  &barberbackend.Horario{},
		citasErr: barberbackend.ErrUnavailable,
	}

	uc := NewUseCase(backend, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, BarberID: 7, Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.BackendDegraded)
	assert.Empty(t, resp.Appointments)
	for _, status := range resp.DaySlots {
		assert.False(t, status.Occupied)
	}
}

func TestExecute_MalformedCita(t *testing.T) {
	backend := &fakeBackend{
		horario: &barberbackend.Horario{},
		citas:   []barberbackend.Cita{{Hora: "bad", HoraFin: "10:00"}},
	}

	uc := NewUseCase(backend, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{UserID: 1, BarberID: 7, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidBackendData)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBackend{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BarberID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BarberID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
