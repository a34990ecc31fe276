package save_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BMS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BMS-ScheduleService/internal/service/editor"
)

const (
	msgSessionNotFound    = "sesión de edición no encontrada"
	msgForbidden          = "acceso denegado"
	msgSaveInFlight       = "ya hay un guardado en curso"
	msgLunchOrder         = "el fin del almuerzo debe ser posterior al inicio"
	msgLunchTooShort      = "el almuerzo debe durar al menos 30 minutos"
	msgBackendUnavailable = "el backend de la barbería no está disponible, el horario no se guardó"
	msgSaveRejected       = "el backend rechazó el horario"
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

// Handle POST /api/v1/schedule-sessions/{sessionId}/save
// При любой ошибке сохранения состояние сессии остается как было -
// пользователь правит или повторяет сохранение вручную.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	userID, _ := middleware.UserIDFromContext(r.Context())

	state, err := h.service.Save(r.Context(), &editor.SessionRef{SessionID: sessionID, UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrSessionNotFound):
			h.logger.Warn("POST /schedule-sessions/{id}/save - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, editor.ErrAccessDenied):
			h.logger.Warn("POST /schedule-sessions/{id}/save - Access denied: session=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editor.ErrSaveInFlight):
			h.logger.Warn("POST /schedule-sessions/{id}/save - Save already in flight: session=%s", sessionID)
			handlers.RespondConflict(w, msgSaveInFlight)

		case errors.Is(err, editor.ErrLunchOrder):
			h.logger.Warn("POST /schedule-sessions/{id}/save - Lunch order violation: session=%s", sessionID)
			handlers.RespondUnprocessable(w, msgLunchOrder)

		case errors.Is(err, editor.ErrLunchTooShort):
			h.logger.Warn("POST /schedule-sessions/{id}/save - Lunch too short: session=%s", sessionID)
			handlers.RespondUnprocessable(w, msgLunchTooShort)

		case errors.Is(err, editor.ErrBackendUnavailable):
			h.logger.Error("POST /schedule-sessions/{id}/save - Backend unavailable: session=%s, error=%v",
				sessionID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		case errors.Is(err, editor.ErrSaveRejected):
			h.logger.Warn("POST /schedule-sessions/{id}/save - Save rejected: session=%s, error=%v", sessionID, err)
			handlers.RespondConflict(w, msgSaveRejected)

		default:
			h.logger.Error("POST /schedule-sessions/{id}/save - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule-sessions/{id}/save - Schedule saved: session=%s, user_id=%d", sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, state)
}
