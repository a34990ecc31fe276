package open_session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BMS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

const (
	msgInvalidBarberID = "ID de barbero no válido"
	msgMissingDate     = "la fecha es obligatoria"
	msgInvalidDate     = "formato de fecha no válido, se espera YYYY-MM-DD"
)

type Handler struct {
	service EditorService
	logger  Logger
}

func NewHandler(service EditorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/barbers/{barberId}/schedule/sessions
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /barbers/{id}/schedule/sessions - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("POST /barbers/{id}/schedule/sessions - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("POST /barbers/{id}/schedule/sessions - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	state, err := h.service.Open(r.Context(), &editor.OpenRequest{
		UserID:   userID,
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		h.logger.Error("POST /barbers/{id}/schedule/sessions - Failed to open session: barber_id=%d, error=%v",
			barberID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /barbers/{id}/schedule/sessions - Session opened: session=%s, barber_id=%d, user_id=%d",
		state.SessionID, barberID, userID)
	handlers.RespondJSON(w, http.StatusCreated, state)
}
