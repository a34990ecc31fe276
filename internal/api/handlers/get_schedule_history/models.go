package get_schedule_history

import (
	"encoding/json"
	"time"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
)

// HistoryEntry одна запись журнала сохранений в ответе API
type HistoryEntry struct {
	ID       int64           `json:"id"`
	BarberID int64           `json:"barberId"`
	UserID   int64           `json:"userId"`
	Payload  json.RawMessage `json:"payload"`
	SavedAt  string          `json:"savedAt"`
}

// HistoryResponse страница истории сохранений барбера
type HistoryResponse struct {
	BarberID int64          `json:"barberId"`
	Entries  []HistoryEntry `json:"entries"`
	Limit    uint64         `json:"limit"`
	Offset   uint64         `json:"offset"`
}

// FromDomainEntries конвертирует записи журнала в ответ API
func FromDomainEntries(barberID int64, entries []*domain.ScheduleAuditEntry, limit, offset uint64) *HistoryResponse {
	resp := &HistoryResponse{
		BarberID: barberID,
		Entries:  make([]HistoryEntry, 0, len(entries)),
		Limit:    limit,
		Offset:   offset,
	}

	for _, entry := range entries {
		resp.Entries = append(resp.Entries, HistoryEntry{
			ID:       entry.ID,
			BarberID: entry.BarberID,
			UserID:   entry.UserID,
			Payload:  json.RawMessage(entry.Payload),
			SavedAt:  entry.SavedAt.UTC().Format(time.RFC3339),
		})
	}

	return resp
}
