package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BMS-ScheduleService/internal/api/middleware"
	saveSchedule "github.com/m04kA/BMS-ScheduleService/internal/usecase/save_schedule"
)

const (
	msgInvalidBarberID    = "ID de barbero no válido"
	msgInvalidRequestBody = "cuerpo de solicitud no válido"
	msgLunchOrder         = "el fin del almuerzo debe ser posterior al inicio"
	msgLunchTooShort      = "el almuerzo debe durar al menos 30 minutos"
	msgBackendUnavailable = "el backend de la barbería no está disponible, el horario no se guardó"
	msgSaveRejected       = "el backend rechazó el horario"
)

type Handler struct {
	useCase SaveScheduleUseCase
	logger  Logger
}

func NewHandler(useCase SaveScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbers/{barberId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /barbers/{id}/schedule - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbers/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, barberID)
	if err != nil {
		h.logger.Warn("PUT /barbers/{id}/schedule - Invalid schedule payload: barber_id=%d, error=%v", barberID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, saveSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /barbers/{id}/schedule - Invalid input: barber_id=%d, error=%v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, saveSchedule.ErrLunchOrder):
			h.logger.Warn("PUT /barbers/{id}/schedule - Lunch order violation: barber_id=%d", barberID)
			handlers.RespondUnprocessable(w, msgLunchOrder)

		case errors.Is(err, saveSchedule.ErrLunchTooShort):
			h.logger.Warn("PUT /barbers/{id}/schedule - Lunch too short: barber_id=%d", barberID)
			handlers.RespondUnprocessable(w, msgLunchTooShort)

		case errors.Is(err, saveSchedule.ErrBackendUnavailable):
			h.logger.Error("PUT /barbers/{id}/schedule - Backend unavailable: barber_id=%d, error=%v", barberID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		case errors.Is(err, saveSchedule.ErrRejected):
			h.logger.Warn("PUT /barbers/{id}/schedule - Save rejected: barber_id=%d, error=%v", barberID, err)
			handlers.RespondConflict(w, msgSaveRejected)

		default:
			h.logger.Error("PUT /barbers/{id}/schedule - Failed to save: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbers/{id}/schedule - Schedule saved: barber_id=%d, user_id=%d, stripped=%d",
		barberID, userID, len(result.StrippedSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
