package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shop-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
)

const (
	syncLogsTable = "sync_logs sl"
)

type syncLogRepository struct {
	conn *postgres.Connection
}

func NewSyncLogRepository(conn *postgres.Connection) SyncLogRepository {
	return &syncLogRepository{
		conn: conn,
	}
}

func (r *syncLogRepository) Create(ctx context.Context, log *domain.SyncLog) error {
	query, args, err := squirrel.
		Insert("sync_logs").
		Columns("id", "status", "date_from", "date_to", "started_at").
		Values(log.ID, log.Status, log.DateFrom, log.DateTo, log.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir log de sincronização: %w", err)
	}

	return nil
}

func (r *syncLogRepository) Finish(ctx context.Context, log *domain.SyncLog) error {
	query, args, err := squirrel.
		Update("sync_logs").
		SetMap(map[string]any{
			"status":          log.Status,
			"entries_created": log.EntriesCreated,
			"entries_updated": log.EntriesUpdated,
			"error_message":   log.ErrorMessage,
			"completed_at":    log.CompletedAt,
		}).
		Where(squirrel.Eq{"id": log.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar log de sincronização: %w", err)
	}

	return expectAffected(result)
}

func (r *syncLogRepository) Latest(ctx context.Context) (*domain.SyncLog, error) {
	query, args, err := squirrel.
		Select(
			"sl.id",
			"sl.status",
			"to_char(sl.date_from, 'YYYY-MM-DD')",
			"to_char(sl.date_to, 'YYYY-MM-DD')",
			"sl.entries_created",
			"sl.entries_updated",
			"sl.error_message",
			"sl.started_at",
			"sl.completed_at",
		).
		From(syncLogsTable).
		OrderBy("sl.started_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	log := &domain.SyncLog{}
	var (
		status       string
		errorMessage sql.NullString
		completedAt  sql.NullTime
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&log.ID,
		&status,
		&log.DateFrom,
		&log.DateTo,
		&log.EntriesCreated,
		&log.EntriesUpdated,
		&errorMessage,
		&log.StartedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear log de sincronização: %w", err)
	}

	log.Status = domain.SyncStatus(status)
	if errorMessage.Valid {
		log.ErrorMessage = &errorMessage.String
	}
	if completedAt.Valid {
		log.CompletedAt = &completedAt.Time
	}

	return log, nil
}
