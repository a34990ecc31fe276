package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BMS-ScheduleService/internal/domain"
	"github.com/m04kA/BMS-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий журнала сохранений расписаний.
// Журнал append-only: записи создаются и читаются, но никогда не меняются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись о успешном сохранении расписания
func (r *Repository) Create(ctx context.Context, entry *domain.ScheduleAuditEntry) (*domain.ScheduleAuditEntry, error) {
	query, args, err := psqlbuilder.Insert("schedule_audit").
		Columns(
			"barber_id",
			"user_id",
			"payload",
			"saved_at",
		).
		Values(
			entry.BarberID,
			entry.UserID,
			entry.Payload,
			entry.SavedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return entry, nil
}

// ListByBarber получает историю сохранений барбера, новые записи первыми
func (r *Repository) ListByBarber(ctx context.Context, barberID int64, limit, offset uint64) ([]*domain.ScheduleAuditEntry, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"barber_id",
		"user_id",
		"payload",
		"saved_at",
	).
		From("schedule_audit").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("saved_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var entries []*domain.ScheduleAuditEntry

	for rows.Next() {
		var entry domain.ScheduleAuditEntry
		var savedAt sql.NullTime

		err = rows.Scan(
			&entry.ID,
			&entry.BarberID,
			&entry.UserID,
			&entry.Payload,
			&savedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBarber - scan entry: %v", ErrScanRow, err)
		}

		entry.SavedAt = savedAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - rows iteration: %v", ErrScanRow, err)
	}

	return entries, nil
}
