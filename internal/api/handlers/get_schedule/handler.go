package get_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	loadSchedule "github.com/m04kA/BMS-ScheduleService/internal/usecase/load_schedule"
)

const (
	msgInvalidBarberID = "ID de barbero no válido"
	msgMissingDate     = "la fecha es obligatoria"
	msgInvalidDate     = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgBadBackendData  = "el backend devolvió datos de horario no válidos"
)

type Handler struct {
	useCase LoadScheduleUseCase
	logger  Logger
}

func NewHandler(useCase LoadScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем barberId из URL
	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/schedule - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbers/{id}/schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &loadSchedule.Request{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, loadSchedule.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/schedule - Invalid input: barber_id=%d, error=%v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)

		case errors.Is(err, loadSchedule.ErrInvalidBackendData):
			h.logger.Error("GET /barbers/{id}/schedule - Malformed backend data: barber_id=%d, error=%v", barberID, err)
			handlers.RespondBadGateway(w, msgBadBackendData)

		default:
			h.logger.Error("GET /barbers/{id}/schedule - Failed to load schedule: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/schedule - Schedule loaded: barber_id=%d, date=%s, degraded=%v",
		barberID, dateStr, result.BackendDegraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
