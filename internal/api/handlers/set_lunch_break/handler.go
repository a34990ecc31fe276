package set_lunch_break

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
	msgInvalidTime        = "formato de hora no válido, se espera HH:MM"
	msgSessionNotFound    = "sesión de edición no encontrada"
	msgForbidden          = "acceso denegado"
	msgSaveInFlight       = "hay un guardado en curso, intente de nuevo"
	msgLunchOrder         = "el fin del almuerzo debe ser posterior al inicio"
)

// SetLunchBreakRequest HTTP request model
// Присылаются только изменяемые поля
type SetLunchBreakRequest struct {
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
	Active *bool   `json:"active,omitempty"`
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

// Handle POST /api/v1/schedule-sessions/{sessionId}/lunch-break
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req SetLunchBreakRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule-sessions/{id}/lunch-break - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.SetLunchBreak(
		&editor.SessionRef{SessionID: sessionID, UserID: userID},
		&editor.SetLunchBreakRequest{Start: req.Start, End: req.End, Active: req.Active},
	)
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrSessionNotFound):
			h.logger.Warn("POST /schedule-sessions/{id}/lunch-break - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, editor.ErrAccessDenied):
			h.logger.Warn("POST /schedule-sessions/{id}/lunch-break - Access denied: session=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editor.ErrSaveInFlight):
			h.logger.Warn("POST /schedule-sessions/{id}/lunch-break - Save in flight: session=%s", sessionID)
			handlers.RespondConflict(w, msgSaveInFlight)

		case errors.Is(err, editor.ErrInvalidTime):
			h.logger.Warn("POST /schedule-sessions/{id}/lunch-break - Invalid time: session=%s, error=%v",
				sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, editor.ErrLunchOrder):
			// Правка отклонена, прежнее валидное значение сохранено
			h.logger.Warn("POST /schedule-sessions/{id}/lunch-break - Order violation: session=%s", sessionID)
			handlers.RespondUnprocessable(w, msgLunchOrder)

		default:
			h.logger.Error("POST /schedule-sessions/{id}/lunch-break - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule-sessions/{id}/lunch-break - Lunch break updated: session=%s, lunch=%s-%s",
		sessionID, state.LunchBreak.Start, state.LunchBreak.End)
	handlers.RespondJSON(w, http.StatusOK, state)
}
