package close_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BMS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

const (
	msgSessionNotFound = "sesión de edición no encontrada"
	msgForbidden       = "acceso denegado"
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

// Handle DELETE /api/v1/schedule-sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	userID, _ := middleware.UserIDFromContext(r.Context())

	err := h.service.Close(&editor.SessionRef{SessionID: sessionID, UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrSessionNotFound):
			h.logger.Warn("DELETE /schedule-sessions/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, editor.ErrAccessDenied):
			h.logger.Warn("DELETE /schedule-sessions/{id} - Access denied: session=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /schedule-sessions/{id} - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule-sessions/{id} - Session closed: session=%s, user_id=%d", sessionID, userID)
	w.WriteHeader(http.StatusNoContent)
}
