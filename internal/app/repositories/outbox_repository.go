package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

// OutboxRepository handles the transactional notification outbox. Rows are
// enqueued inside the same transaction as the state change that caused them
// and delivered later by the dispatcher.
type OutboxRepository struct {
	db *pgxpool.Pool
}

// NewOutboxRepository creates a new OutboxRepository
func NewOutboxRepository(db *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{db: db}
}

// Enqueue adds a pending message within the caller's transaction. A
// duplicate dedup key is silently skipped so retried transitions do not
// double-notify.
func (r *OutboxRepository) Enqueue(ctx context.Context, tx pgx.Tx, recipientID int64, message, dedupKey string) error {
	query := squirrel.Insert("notification_outbox").
		Columns("recipient_id", "message", "dedup_key").
		Values(recipientID, message, dedupKey).
		Suffix("ON CONFLICT (dedup_key) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return apperrors.NewCollaboratorError(err)
	}

	return nil
}

// ListPending returns undispatched messages, oldest first
func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]*models.OutboxMessage, error) {
	query := squirrel.Select("id", "recipient_id", "message", "dedup_key", "created_at", "dispatched_at").
		From("notification_outbox").
		Where("dispatched_at IS NULL").
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewCollaboratorError(err)
	}
	defer rows.Close()

	var messages []*models.OutboxMessage
	for rows.Next() {
		var m models.OutboxMessage
		err := rows.Scan(&m.ID, &m.RecipientID, &m.Message, &m.DedupKey, &m.CreatedAt, &m.DispatchedAt)
		if err != nil {
			return nil, apperrors.NewCollaboratorError(err)
		}
		messages = append(messages, &m)
	}

	return messages, nil
}

// MarkDispatched stamps a message as delivered
func (r *OutboxRepository) MarkDispatched(ctx context.Context, id int64) error {
	query := squirrel.Update("notification_outbox").
		Set("dispatched_at", time.Now()).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperrors.NewCollaboratorError(err)
	}

	return nil
}
