package toggle_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BMS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud no válido"
	msgUnknownDay         = "día de la semana no válido"
	msgSessionNotFound    = "sesión de edición no encontrada"
	msgForbidden          = "acceso denegado"
	msgSaveInFlight       = "hay un guardado en curso, intente de nuevo"
)

// ToggleDayRequest HTTP request model
type ToggleDayRequest struct {
	Day string `json:"day"`
}

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

// Handle POST /api/v1/schedule-sessions/{sessionId}/toggle-day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req ToggleDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule-sessions/{id}/toggle-day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.ToggleDay(&editor.SessionRef{SessionID: sessionID, UserID: userID}, req.Day)
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrSessionNotFound):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-day - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, editor.ErrAccessDenied):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-day - Access denied: session=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editor.ErrSaveInFlight):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-day - Save in flight: session=%s", sessionID)
			handlers.RespondConflict(w, msgSaveInFlight)

		case errors.Is(err, editor.ErrUnknownDay):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-day - Unknown day %q: session=%s", req.Day, sessionID)
			handlers.RespondBadRequest(w, msgUnknownDay)

		default:
			h.logger.Error("POST /schedule-sessions/{id}/toggle-day - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule-sessions/{id}/toggle-day - Day toggled: session=%s, day=%s", sessionID, req.Day)
	handlers.RespondJSON(w, http.StatusOK, state)
}
