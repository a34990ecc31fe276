package get_schedule_history

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BMS-ScheduleService/internal/api/handlers"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	msgInvalidBarberID = "identificador de barbero inválido"
	msgInvalidPaging   = "parámetros de paginación inválidos"
)

type Handler struct {
	repo   AuditRepository
	logger Logger
}

func NewHandler(repo AuditRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/schedule/history?limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("GET /barbers/{id}/schedule/history - Invalid barber ID: %v", mux.Vars(r)["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	limit, offset, err := parsePaging(r)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/schedule/history - Invalid paging: barber_id=%d, error=%v", barberID, err)
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}

	entries, err := h.repo.ListByBarber(r.Context(), barberID, limit, offset)
	if err != nil {
		h.logger.Error("GET /barbers/{id}/schedule/history - Failed: barber_id=%d, error=%v", barberID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers/{id}/schedule/history - OK: barber_id=%d, entries=%d", barberID, len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromDomainEntries(barberID, entries, limit, offset))
}

func parsePaging(r *http.Request) (limit, offset uint64, err error) {
	limit = defaultLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return 0, 0, strconv.ErrSyntax
		}
		if limit > maxLimit {
			limit = maxLimit
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, strconv.ErrSyntax
		}
	}

	return limit, offset, nil
}
