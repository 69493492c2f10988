package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

// NotificationRepository handles database operations for delivered notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Insert delivers a notification to its recipient
func (r *NotificationRepository) Insert(ctx context.Context, recipientID int64, message string) (int64, error) {
	query := squirrel.Insert("notifications").
		Columns("recipient_id", "message").
		Values(recipientID, message).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, apperrors.NewCollaboratorError(err)
	}

	return id, nil
}

// ListByRecipient returns a recipient's notifications, newest first
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID int64) ([]*models.Notification, error) {
	query := squirrel.Select("id", "recipient_id", "message", "read", "created_at").
		From("notifications").
		Where("recipient_id = ?", recipientID).
		OrderBy("created_at DESC").
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

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.RecipientID, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, apperrors.NewCollaboratorError(err)
		}
		notifications = append(notifications, &n)
	}

	return notifications, nil
}

// CountUnread returns the number of unread notifications for a recipient
func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID int64) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("notifications").
		Where("recipient_id = ? AND read = FALSE", recipientID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, apperrors.NewCollaboratorError(err)
	}

	return count, nil
}

// MarkRead marks one notification as read, scoped to its recipient
func (r *NotificationRepository) MarkRead(ctx context.Context, id, recipientID int64) error {
	query := squirrel.Update("notifications").
		Set("read", true).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperrors.NewCollaboratorError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes one notification, scoped to its recipient
func (r *NotificationRepository) Delete(ctx context.Context, id, recipientID int64) error {
	query := squirrel.Delete("notifications").
		Where("id = ? AND recipient_id = ?", id, recipientID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return apperrors.NewCollaboratorError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// MarkAllRead marks every notification for a recipient as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID int64) error {
	query := squirrel.Update("notifications").
		Set("read", true).
		Where("recipient_id = ? AND read = FALSE", recipientID).
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
