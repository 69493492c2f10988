package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
	"github.com/volunteerhub/volunteerhub/internal/pkg/dberrors"
)

// AssignmentRepository handles database operations for event assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Insert creates an assignment within a transaction. A duplicate
// (event, volunteer) pair maps to ErrAlreadyAssigned.
func (r *AssignmentRepository) Insert(ctx context.Context, tx pgx.Tx, eventID, volunteerID int64) error {
	query := squirrel.Insert("assignments").
		Columns("event_id", "volunteer_id", "participation_status", "needs_review").
		Values(eventID, volunteerID, models.ParticipationRegistered, true).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyAssigned
		}
		return apperrors.NewCollaboratorError(err)
	}

	return nil
}

// Get retrieves one assignment by its (event, volunteer) key within a transaction
func (r *AssignmentRepository) Get(ctx context.Context, tx pgx.Tx, eventID, volunteerID int64) (*models.Assignment, error) {
	query := squirrel.Select(
		"event_id", "volunteer_id", "participation_status", "rating",
		"notes", "needs_review", "created_at", "reviewed_at").
		From("assignments").
		Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var a models.Assignment
	err = tx.QueryRow(ctx, sql, args...).Scan(
		&a.EventID,
		&a.VolunteerID,
		&a.ParticipationStatus,
		&a.Rating,
		&a.Notes,
		&a.NeedsReview,
		&a.CreatedAt,
		&a.ReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, apperrors.NewCollaboratorError(err)
	}

	return &a, nil
}

// UpdateReview records the adjudicated outcome for an assignment within a
// transaction and clears the review flag.
func (r *AssignmentRepository) UpdateReview(ctx context.Context, tx pgx.Tx, a *models.Assignment) error {
	query := squirrel.Update("assignments").
		Set("participation_status", a.ParticipationStatus).
		Set("rating", a.Rating).
		Set("notes", a.Notes).
		Set("needs_review", false).
		Set("reviewed_at", time.Now()).
		Where("event_id = ? AND volunteer_id = ?", a.EventID, a.VolunteerID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return apperrors.NewCollaboratorError(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// CountPendingReviews returns how many assignments for an event still await
// review, under the caller's transaction.
func (r *AssignmentRepository) CountPendingReviews(ctx context.Context, tx pgx.Tx, eventID int64) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("assignments").
		Where("event_id = ? AND needs_review = TRUE", eventID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, apperrors.NewCollaboratorError(err)
	}

	return count, nil
}

// ListVolunteerIDs returns the volunteer IDs assigned to an event within a
// transaction. Used to fan out notifications on lifecycle transitions.
func (r *AssignmentRepository) ListVolunteerIDs(ctx context.Context, tx pgx.Tx, eventID int64) ([]int64, error) {
	query := squirrel.Select("volunteer_id").
		From("assignments").
		Where("event_id = ?", eventID).
		OrderBy("volunteer_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewCollaboratorError(err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewCollaboratorError(err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ListByEvent retrieves an event's assignments joined with volunteer identity
func (r *AssignmentRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.Assignment, error) {
	query := squirrel.Select(
		"a.event_id", "a.volunteer_id", "a.participation_status", "a.rating",
		"a.notes", "a.needs_review", "a.created_at", "a.reviewed_at",
		"u.email", "COALESCE(vp.full_name, '')").
		From("assignments a").
		Join("users u ON u.id = a.volunteer_id").
		LeftJoin("volunteer_profiles vp ON vp.user_id = a.volunteer_id").
		Where("a.event_id = ?", eventID).
		OrderBy("a.created_at ASC").
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

	var assignments []*models.Assignment
	for rows.Next() {
		var a models.Assignment
		err := rows.Scan(
			&a.EventID,
			&a.VolunteerID,
			&a.ParticipationStatus,
			&a.Rating,
			&a.Notes,
			&a.NeedsReview,
			&a.CreatedAt,
			&a.ReviewedAt,
			&a.VolunteerEmail,
			&a.VolunteerName,
		)
		if err != nil {
			return nil, apperrors.NewCollaboratorError(err)
		}
		assignments = append(assignments, &a)
	}

	return assignments, nil
}

// HistoryRow is one joined assignment/event row for history listings
type HistoryRow struct {
	Assignment models.Assignment
	Event      models.Event
}

// ListHistory retrieves assignment history joined with event details.
// A nil volunteerID returns every volunteer's history (admin view).
func (r *AssignmentRepository) ListHistory(ctx context.Context, volunteerID *int64) ([]*HistoryRow, error) {
	query := squirrel.Select(
		"a.event_id", "a.volunteer_id", "a.participation_status", "a.rating",
		"COALESCE(vp.full_name, '')",
		"e.name", "e.location_name", "e.description", "e.date",
		"e.duration_hours", "e.urgency", "e.required_skills", "e.status").
		From("assignments a").
		Join("events e ON e.id = a.event_id").
		LeftJoin("volunteer_profiles vp ON vp.user_id = a.volunteer_id").
		OrderBy("e.date DESC", "a.volunteer_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if volunteerID != nil {
		query = query.Where("a.volunteer_id = ?", *volunteerID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewCollaboratorError(err)
	}
	defer rows.Close()

	var history []*HistoryRow
	for rows.Next() {
		var row HistoryRow
		err := rows.Scan(
			&row.Assignment.EventID,
			&row.Assignment.VolunteerID,
			&row.Assignment.ParticipationStatus,
			&row.Assignment.Rating,
			&row.Assignment.VolunteerName,
			&row.Event.Name,
			&row.Event.LocationName,
			&row.Event.Description,
			&row.Event.Date,
			&row.Event.DurationHours,
			&row.Event.Urgency,
			&row.Event.RequiredSkills,
			&row.Event.Status,
		)
		if err != nil {
			return nil, apperrors.NewCollaboratorError(err)
		}
		row.Event.ID = row.Assignment.EventID
		history = append(history, &row)
	}

	return history, nil
}

// CountPendingReviewsTotal returns pending reviews across all finalized events
func (r *AssignmentRepository) CountPendingReviewsTotal(ctx context.Context) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("assignments a").
		Join("events e ON e.id = a.event_id").
		Where("a.needs_review = TRUE AND e.status = ?", models.EventFinalized).
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

// IsAssigned reports whether a volunteer is already assigned to an event
func (r *AssignmentRepository) IsAssigned(ctx context.Context, eventID, volunteerID int64) (bool, error) {
	query := squirrel.Select("1").
		From("assignments").
		Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.NewCollaboratorError(err)
	}

	return true, nil
}
