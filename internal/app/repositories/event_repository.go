package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
	"github.com/volunteerhub/volunteerhub/internal/pkg/helpers"
)

// eventColumns are the scan columns shared by event queries. The trailing
// subquery derives the registered count from assignments.
var eventColumns = []string{
	"e.id", "e.name", "e.description", "e.location_name", "e.city", "e.state", "e.zip",
	"e.date", "e.duration_hours", "e.urgency", "e.required_skills",
	"e.volunteers_needed", "e.status", "e.created_at", "e.updated_at",
	"(SELECT COUNT(*) FROM assignments a WHERE a.event_id = e.id) AS volunteers_registered",
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.LocationName,
		&event.City,
		&event.State,
		&event.Zip,
		&event.Date,
		&event.DurationHours,
		&event.Urgency,
		&event.RequiredSkills,
		&event.VolunteersNeeded,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.VolunteersRegistered,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event and returns its ID
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := squirrel.Insert("events").
		Columns("name", "description", "location_name", "city", "state", "zip",
			"date", "duration_hours", "urgency", "required_skills", "volunteers_needed", "status").
		Values(event.Name, event.Description, event.LocationName, event.City, event.State, event.Zip,
			event.Date, event.DurationHours, event.Urgency, event.RequiredSkills,
			event.VolunteersNeeded, models.EventPending).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, apperrors.NewCollaboratorError(err)
	}

	return id, nil
}

// Update rewrites an event's editable fields
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := squirrel.Update("events").
		Set("name", event.Name).
		Set("description", event.Description).
		Set("location_name", event.LocationName).
		Set("city", event.City).
		Set("state", event.State).
		Set("zip", event.Zip).
		Set("date", event.Date).
		Set("duration_hours", event.DurationHours).
		Set("urgency", event.Urgency).
		Set("required_skills", event.RequiredSkills).
		Set("volunteers_needed", event.VolunteersNeeded).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", event.ID).
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
		return apperrors.ErrEventNotFound
	}

	return nil
}

// GetByID retrieves an event with its registered volunteer count
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events e").
		Where("e.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.NewCollaboratorError(err)
	}

	return event, nil
}

// GetForUpdate locks the event row for the duration of the transaction and
// returns it with the current registered count. Lifecycle transitions use
// this to serialize concurrent state checks.
func (r *EventRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.Event, error) {
	query := squirrel.Select(
		"id", "name", "description", "location_name", "city", "state", "zip",
		"date", "duration_hours", "urgency", "required_skills",
		"volunteers_needed", "status", "created_at", "updated_at").
		From("events").
		Where("id = ?", id).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var event models.Event
	err = tx.QueryRow(ctx, sql, args...).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.LocationName,
		&event.City,
		&event.State,
		&event.Zip,
		&event.Date,
		&event.DurationHours,
		&event.Urgency,
		&event.RequiredSkills,
		&event.VolunteersNeeded,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.NewCollaboratorError(err)
	}

	// Count under the same lock so capacity checks cannot race
	countSQL, countArgs, err := squirrel.Select("COUNT(*)").
		From("assignments").
		Where("event_id = ?", id).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&event.VolunteersRegistered); err != nil {
		return nil, apperrors.NewCollaboratorError(err)
	}

	return &event, nil
}

// UpdateStatus sets the lifecycle status within a transaction
func (r *EventRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status models.EventStatus) error {
	query := squirrel.Update("events").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
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
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event within a transaction; assignments cascade
func (r *EventRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	query := squirrel.Delete("events").
		Where("id = ?", id).
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
		return apperrors.ErrEventNotFound
	}

	return nil
}

// List retrieves events matching the filter, with pagination
func (r *EventRepository) List(ctx context.Context, filter dto.EventFilterRequest) ([]*models.Event, int64, error) {
	base := squirrel.Select(eventColumns...).
		From("events e").
		PlaceholderFormat(squirrel.Dollar)

	countQuery := squirrel.Select("COUNT(*)").
		From("events e").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != nil {
		base = base.Where("e.status = ?", *filter.Status)
		countQuery = countQuery.Where("e.status = ?", *filter.Status)
	}
	if filter.Urgency != nil {
		base = base.Where("e.urgency = ?", *filter.Urgency)
		countQuery = countQuery.Where("e.urgency = ?", *filter.Urgency)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		base = base.Where("(e.name ILIKE ? OR e.description ILIKE ? OR e.city ILIKE ?)", pattern, pattern, pattern)
		countQuery = countQuery.Where("(e.name ILIKE ? OR e.description ILIKE ? OR e.city ILIKE ?)", pattern, pattern, pattern)
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewCollaboratorError(err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	base = base.OrderBy("e.date ASC", "e.id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	sql, args, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, apperrors.NewCollaboratorError(err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, apperrors.NewCollaboratorError(err)
		}
		events = append(events, event)
	}

	return events, total, nil
}

// CountByStatus returns how many events are in the given lifecycle state
func (r *EventRepository) CountByStatus(ctx context.Context, status models.EventStatus) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("events").
		Where("status = ?", status).
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

// ListUpcoming returns the next non-completed events ordered by date
func (r *EventRepository) ListUpcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events e").
		Where("e.status <> ?", models.EventCompleted).
		Where("e.date >= CURRENT_DATE").
		OrderBy("e.date ASC").
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

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, apperrors.NewCollaboratorError(err)
		}
		events = append(events, event)
	}

	return events, nil
}
