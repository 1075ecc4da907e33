package blockedtime

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/glowtress/booking-service/internal/domain"
	"github.com/glowtress/booking-service/pkg/dbmetrics"
	"github.com/glowtress/booking-service/pkg/psqlbuilder"
)

var blockedTimeColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository persists manually blocked time windows.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a blocked-time repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a blocked window.
func (r *Repository) Create(ctx context.Context, bt *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("date", "start_time", "end_time", "reason").
		Values(bt.Date, bt.StartTime, bt.EndTime, bt.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&bt.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	bt.CreatedAt = createdAt.Time
	return bt, nil
}

// GetByDate returns the blocked windows of a single date ordered by start.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedTimeColumns...).
		From("blocked_times").
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		var bt domain.BlockedTime
		var createdAt sql.NullTime
		if err := rows.Scan(&bt.ID, &bt.Date, &bt.StartTime, &bt.EndTime, &bt.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan blocked time row: %v", ErrScanRow, err)
		}
		bt.CreatedAt = createdAt.Time
		blocked = append(blocked, &bt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows error: %v", ErrScanRow, err)
	}
	return blocked, nil
}

// Delete removes a blocked window.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockedTimeNotFound
	}
	return nil
}
