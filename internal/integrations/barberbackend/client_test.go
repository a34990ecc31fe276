package barberbackend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "test-token", 5*time.Second, nil, nopLogger{})
}

func TestFetchSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/barberos/7/horario", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"horario": {
				"diasLaborales": {
					"lunes": {"activo": true, "horas": ["09:00", "09:30"]}
				},
				"horarioAlmuerzo": {"inicio": "13:00", "fin": "14:00", "activo": true},
				"excepciones": []
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	horario, err := client.FetchSchedule(context.Background(), 7)
	require.NoError(t, err)

	require.Contains(t, horario.DiasLaborales, "lunes")
	assert.True(t, horario.DiasLaborales["lunes"].Activo)
	assert.Equal(t, []string{"09:00", "09:30"}, horario.DiasLaborales["lunes"].Horas)
	require.NotNil(t, horario.HorarioAlmuerzo)
	assert.Equal(t, "13:00", horario.HorarioAlmuerzo.Inicio)
}

func TestFetchSchedule_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchSchedule(context.Background(), 7)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestFetchSchedule_EmptyEnvelopeIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchSchedule(context.Background(), 7)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestFetchSchedule_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.FetchSchedule(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchSchedule_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // соединение будет отклонено

	client := newTestClient(server.URL)
	_, err := client.FetchSchedule(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchAppointments(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/citas", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		query := r.URL.Query()
		assert.Equal(t, "7", query.Get("barberoID"))
		assert.Equal(t, "2026-09-07", query.Get("fecha"))
		assert.Equal(t, "true", query.Get("all"))

		_, _ = w.Write([]byte(`{
			"citas": [
				{
					"hora": "10:00:00",
					"horaFin": "10:30:00",
					"cliente": {"nombre": "Carlos"},
					"servicio": {"nombre": "Corte"}
				},
				{
					"hora": "11:00",
					"horaFin": "11:30",
					"pacienteTemporalNombre": "Walk-in"
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	citas, err := client.FetchAppointments(context.Background(), 7, date)
	require.NoError(t, err)
	require.Len(t, citas, 2)

	first, err := citas[0].ToDomain()
	require.NoError(t, err)
	assert.Equal(t, types.TimeOfDay("10:00"), first.Start, "seconds must be truncated")
	assert.Equal(t, types.TimeOfDay("10:30"), first.End)
	assert.Equal(t, "Carlos", first.ClientName)
	assert.Equal(t, "Corte", first.ServiceName)

	second, err := citas[1].ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "Walk-in", second.ClientName, "walk-in name is used when no registered client")
	assert.Equal(t, "", second.ServiceName)
}

func TestSaveSchedule(t *testing.T) {
	schedule := domain.NewDefaultSchedule()
	schedule.Days[domain.Monday] = domain.DayAvailability{
		Active: true,
		Slots:  []types.TimeOfDay{"09:00"},
	}

	var received Horario

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/barberos/7/horario", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SaveSchedule(context.Background(), 7, FromDomainSchedule(schedule))
	require.NoError(t, err)

	require.Len(t, received.DiasLaborales, 7, "all seven days travel in every save")
	assert.True(t, received.DiasLaborales["lunes"].Activo)
	assert.Equal(t, []string{"09:00"}, received.DiasLaborales["lunes"].Horas)
	assert.False(t, received.DiasLaborales["domingo"].Activo)
	require.NotNil(t, received.HorarioAlmuerzo)
	assert.Equal(t, "13:00", received.HorarioAlmuerzo.Inicio)
	require.NotNil(t, received.HorarioAlmuerzo.Activo)
	assert.True(t, *received.HorarioAlmuerzo.Activo)
	assert.NotNil(t, received.Excepciones)
}

func TestSaveSchedule_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SaveSchedule(context.Background(), 7, FromDomainSchedule(domain.NewDefaultSchedule()))
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSaveSchedule_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SaveSchedule(context.Background(), 7, FromDomainSchedule(domain.NewDefaultSchedule()))
	assert.ErrorIs(t, err, ErrUnavailable)
}
