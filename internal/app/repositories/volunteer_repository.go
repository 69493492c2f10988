package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

// VolunteerRepository handles database operations for volunteer profiles
// and their derived statistics
type VolunteerRepository struct {
	db *pgxpool.Pool
}

// NewVolunteerRepository creates a new VolunteerRepository
func NewVolunteerRepository(db *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// UpsertProfile creates or replaces a volunteer's profile
func (r *VolunteerRepository) UpsertProfile(ctx context.Context, p *models.VolunteerProfile) error {
	query := squirrel.Insert("volunteer_profiles").
		Columns("user_id", "full_name", "address1", "address2", "city", "state", "zip",
			"skills", "preferences", "availability", "updated_at").
		Values(p.UserID, p.FullName, p.Address1, p.Address2, p.City, p.State, p.Zip,
			p.Skills, p.Preferences, p.Availability, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			address1 = EXCLUDED.address1,
			address2 = EXCLUDED.address2,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip,
			skills = EXCLUDED.skills,
			preferences = EXCLUDED.preferences,
			availability = EXCLUDED.availability,
			updated_at = NOW()`).
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

// GetProfile retrieves a volunteer's profile
func (r *VolunteerRepository) GetProfile(ctx context.Context, userID int64) (*models.VolunteerProfile, error) {
	query := squirrel.Select("user_id", "full_name", "address1", "address2", "city", "state", "zip",
		"skills", "preferences", "availability", "updated_at").
		From("volunteer_profiles").
		Where("user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var p models.VolunteerProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.UserID,
		&p.FullName,
		&p.Address1,
		&p.Address2,
		&p.City,
		&p.State,
		&p.Zip,
		&p.Skills,
		&p.Preferences,
		&p.Availability,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, apperrors.NewCollaboratorError(err)
	}

	return &p, nil
}

// EligibleVolunteer is one matching candidate row for an event
type EligibleVolunteer struct {
	UserID   int64
	Email    string
	FullName string
	City     string
	State    string
	Skills   []string
}

// ListEligible returns volunteers eligible for the event: profile state
// matches the event's state, the event date is in their availability, and
// they are not already assigned.
func (r *VolunteerRepository) ListEligible(ctx context.Context, event *models.Event) ([]*EligibleVolunteer, error) {
	query := squirrel.Select("vp.user_id", "u.email", "vp.full_name", "vp.city", "vp.state", "vp.skills").
		From("volunteer_profiles vp").
		Join("users u ON u.id = vp.user_id").
		Where("u.role = ?", models.RoleVolunteer).
		Where("vp.state = ?", event.State).
		Where("vp.availability @> ARRAY[?]::date[]", event.Date).
		Where(`NOT EXISTS (
			SELECT 1 FROM assignments a
			WHERE a.event_id = ? AND a.volunteer_id = vp.user_id
		)`, event.ID).
		OrderBy("vp.full_name ASC").
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

	var volunteers []*EligibleVolunteer
	for rows.Next() {
		var v EligibleVolunteer
		err := rows.Scan(&v.UserID, &v.Email, &v.FullName, &v.City, &v.State, &v.Skills)
		if err != nil {
			return nil, apperrors.NewCollaboratorError(err)
		}
		volunteers = append(volunteers, &v)
	}

	return volunteers, nil
}

// GetStats returns a volunteer's aggregates over reviewed assignments.
// Only "Volunteered" outcomes count toward attendance and hours.
func (r *VolunteerRepository) GetStats(ctx context.Context, userID int64) (*models.VolunteerStats, error) {
	query := squirrel.Select(
		"COUNT(*) FILTER (WHERE a.participation_status = ?)",
		"COALESCE(AVG(a.rating) FILTER (WHERE a.rating IS NOT NULL), 0)",
		"COALESCE(SUM(e.duration_hours) FILTER (WHERE a.participation_status = ?), 0)").
		From("assignments a").
		Join("events e ON e.id = a.event_id").
		Where("a.volunteer_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	stats := &models.VolunteerStats{UserID: userID}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stats.EventsAttended,
		&stats.AverageRating,
		&stats.TotalHours,
	)
	if err != nil {
		return nil, apperrors.NewCollaboratorError(err)
	}

	return stats, nil
}

// TopVolunteerRow is one leaderboard aggregate
type TopVolunteerRow struct {
	UserID         int64
	FullName       string
	Email          string
	EventsAttended int
	AverageRating  float64
	TotalHours     int
}

// ListTop returns volunteers ranked by attended events then rating
func (r *VolunteerRepository) ListTop(ctx context.Context, limit int) ([]*TopVolunteerRow, error) {
	sql := `
		SELECT vp.user_id, vp.full_name, u.email,
		       COUNT(*) FILTER (WHERE a.participation_status = $1) AS events_attended,
		       COALESCE(AVG(a.rating) FILTER (WHERE a.rating IS NOT NULL), 0) AS avg_rating,
		       COALESCE(SUM(e.duration_hours) FILTER (WHERE a.participation_status = $1), 0) AS total_hours
		FROM volunteer_profiles vp
		JOIN users u ON u.id = vp.user_id
		LEFT JOIN assignments a ON a.volunteer_id = vp.user_id
		LEFT JOIN events e ON e.id = a.event_id
		GROUP BY vp.user_id, vp.full_name, u.email
		ORDER BY events_attended DESC, avg_rating DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, sql, models.ParticipationVolunteered, limit)
	if err != nil {
		return nil, apperrors.NewCollaboratorError(err)
	}
	defer rows.Close()

	var top []*TopVolunteerRow
	for rows.Next() {
		var row TopVolunteerRow
		err := rows.Scan(&row.UserID, &row.FullName, &row.Email,
			&row.EventsAttended, &row.AverageRating, &row.TotalHours)
		if err != nil {
			return nil, apperrors.NewCollaboratorError(err)
		}
		top = append(top, &row)
	}

	return top, nil
}

// AggregateStats returns platform-wide volunteer hour and rating aggregates
func (r *VolunteerRepository) AggregateStats(ctx context.Context) (totalHours int, avgRating float64, err error) {
	sql := `
		SELECT COALESCE(SUM(e.duration_hours) FILTER (WHERE a.participation_status = $1), 0),
		       COALESCE(AVG(a.rating) FILTER (WHERE a.rating IS NOT NULL), 0)
		FROM assignments a
		JOIN events e ON e.id = a.event_id`

	err = r.db.QueryRow(ctx, sql, models.ParticipationVolunteered).Scan(&totalHours, &avgRating)
	if err != nil {
		return 0, 0, apperrors.NewCollaboratorError(err)
	}

	return totalHours, avgRating, nil
}
