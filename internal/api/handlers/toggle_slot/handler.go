package toggle_slot

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
	msgInvalidSlot        = "horario fuera de la cuadrícula de 08:00 a 22:00"
	msgSessionNotFound    = "sesión de edición no encontrada"
	msgForbidden          = "acceso denegado"
	msgSaveInFlight       = "hay un guardado en curso, intente de nuevo"
	msgSlotOccupied       = "el horario está ocupado por una cita y no se puede seleccionar"
)

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	Day  string `json:"day"`
	Slot string `json:"slot"`
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

// Handle POST /api/v1/schedule-sessions/{sessionId}/toggle-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule-sessions/{id}/toggle-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.ToggleSlot(&editor.SessionRef{SessionID: sessionID, UserID: userID}, req.Day, req.Slot)
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrSessionNotFound):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-slot - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, editor.ErrAccessDenied):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-slot - Access denied: session=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editor.ErrSaveInFlight):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-slot - Save in flight: session=%s", sessionID)
			handlers.RespondConflict(w, msgSaveInFlight)

		case errors.Is(err, editor.ErrSlotOccupied):
			// Занятый слот невыбираем: модель не изменилась
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-slot - Slot occupied: session=%s, slot=%s",
				sessionID, req.Slot)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, editor.ErrUnknownDay):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-slot - Unknown day %q: session=%s", req.Day, sessionID)
			handlers.RespondBadRequest(w, msgUnknownDay)

		case errors.Is(err, editor.ErrInvalidTime), errors.Is(err, editor.ErrInvalidSlot):
			h.logger.Warn("POST /schedule-sessions/{id}/toggle-slot - Invalid slot %q: session=%s", req.Slot, sessionID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /schedule-sessions/{id}/toggle-slot - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule-sessions/{id}/toggle-slot - Slot toggled: session=%s, day=%s, slot=%s",
		sessionID, req.Day, req.Slot)
	handlers.RespondJSON(w, http.StatusOK, state)
}
