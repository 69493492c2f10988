package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/repositories"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
	"github.com/volunteerhub/volunteerhub/internal/pkg/helpers"
	"github.com/volunteerhub/volunteerhub/internal/pkg/validation"
)

// VolunteerService defines the interface for volunteer profile, history
// and statistics operations
type VolunteerService interface {
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
	GetHistory(ctx context.Context, userID int64, isAdmin bool) (*dto.HistoryResponse, error)
	GetStats(ctx context.Context, userID int64) (*dto.VolunteerStatsResponse, error)
}

// volunteerServiceImpl implements VolunteerService
type volunteerServiceImpl struct {
	volunteerRepo  *repositories.VolunteerRepository
	assignmentRepo *repositories.AssignmentRepository
	logger         zerolog.Logger
}

// NewVolunteerService creates a new VolunteerService
func NewVolunteerService(
	volunteerRepo *repositories.VolunteerRepository,
	assignmentRepo *repositories.AssignmentRepository,
	logger zerolog.Logger,
) VolunteerService {
	return &volunteerServiceImpl{
		volunteerRepo:  volunteerRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// UpdateProfile validates and stores the caller's volunteer profile
func (s *volunteerServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	s.logger.Debug().Int64("userID", userID).Msg("Updating volunteer profile")

	if !validation.IsValidState(req.State) {
		return nil, apperrors.NewValidationError("state must be a two-letter code")
	}
	if !validation.IsValidZip(req.Zip) {
		return nil, apperrors.NewValidationError("zip must be a valid US postal code")
	}

	availability := make([]time.Time, 0, len(req.Availability))
	for _, dateStr := range req.Availability {
		date, err := helpers.ParseDate(dateStr)
		if err != nil {
			return nil, apperrors.NewValidationError("availability dates must be in YYYY-MM-DD format")
		}
		availability = append(availability, date)
	}

	profile := &models.VolunteerProfile{
		UserID:       userID,
		FullName:     req.FullName,
		Address1:     req.Address1,
		Address2:     req.Address2,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Skills:       req.Skills,
		Preferences:  req.Preferences,
		Availability: availability,
	}

	if err := s.volunteerRepo.UpsertProfile(ctx, profile); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to upsert profile")
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

// GetProfile retrieves the caller's volunteer profile
func (s *volunteerServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	profile, err := s.volunteerRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromProfile(profile)
	return &resp, nil
}

// GetHistory returns the assignment history visible to the caller. Admins
// see every volunteer's history; volunteers see only their own.
func (s *volunteerServiceImpl) GetHistory(ctx context.Context, userID int64, isAdmin bool) (*dto.HistoryResponse, error) {
	var volunteerID *int64
	role := string(models.RoleVolunteer)
	if isAdmin {
		role = string(models.RoleAdmin)
	} else {
		volunteerID = &userID
	}

	rows, err := s.assignmentRepo.ListHistory(ctx, volunteerID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to list history")
		return nil, err
	}

	resp := &dto.HistoryResponse{
		History:  make([]dto.HistoryEntry, 0, len(rows)),
		UserRole: role,
	}
	for _, row := range rows {
		resp.History = append(resp.History, dto.HistoryEntry{
			EventID:             row.Event.ID,
			VolunteerID:         row.Assignment.VolunteerID,
			VolunteerName:       row.Assignment.VolunteerName,
			EventName:           row.Event.Name,
			LocationName:        row.Event.LocationName,
			Description:         row.Event.Description,
			EventDate:           row.Event.Date.Format("2006-01-02"),
			DurationHours:       row.Event.DurationHours,
			Urgency:             string(row.Event.Urgency),
			RequiredSkills:      row.Event.RequiredSkills,
			ParticipationStatus: string(row.Assignment.ParticipationStatus),
			Rating:              row.Assignment.Rating,
			EventStatus:         string(row.Event.Status),
		})
	}

	return resp, nil
}

// GetStats returns a volunteer's aggregates over reviewed assignments
func (s *volunteerServiceImpl) GetStats(ctx context.Context, userID int64) (*dto.VolunteerStatsResponse, error) {
	stats, err := s.volunteerRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.VolunteerStatsResponse{
		UserID:         stats.UserID,
		EventsAttended: stats.EventsAttended,
		AverageRating:  stats.AverageRating,
		TotalHours:     stats.TotalHours,
	}, nil
}
