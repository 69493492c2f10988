package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/repositories"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

// MatchingService finds volunteers for events and validates candidates.
// A volunteer is eligible when their profile state matches the event's
// state and the event date is in their availability.
type MatchingService interface {
	ListEligibleVolunteers(ctx context.Context, eventID int64) ([]dto.EligibleVolunteerResponse, error)
	VerifyEligible(ctx context.Context, event *models.Event, volunteerID int64) error
}

// matchingServiceImpl implements MatchingService
type matchingServiceImpl struct {
	eventRepo     *repositories.EventRepository
	volunteerRepo *repositories.VolunteerRepository
	userRepo      *repositories.UserRepository
	logger        zerolog.Logger
}

// NewMatchingService creates a new MatchingService
func NewMatchingService(
	eventRepo *repositories.EventRepository,
	volunteerRepo *repositories.VolunteerRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) MatchingService {
	return &matchingServiceImpl{
		eventRepo:     eventRepo,
		volunteerRepo: volunteerRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// ListEligibleVolunteers returns unassigned candidates for a pending event
func (s *matchingServiceImpl) ListEligibleVolunteers(ctx context.Context, eventID int64) ([]dto.EligibleVolunteerResponse, error) {
	s.logger.Debug().Int64("eventID", eventID).Msg("Listing eligible volunteers")

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.volunteerRepo.ListEligible(ctx, event)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventID", eventID).Msg("Failed to list eligible volunteers")
		return nil, err
	}

	responses := make([]dto.EligibleVolunteerResponse, 0, len(candidates))
	for _, c := range candidates {
		responses = append(responses, dto.EligibleVolunteerResponse{
			UserID:   c.UserID,
			Email:    c.Email,
			FullName: c.FullName,
			City:     c.City,
			State:    c.State,
			Skills:   c.Skills,
		})
	}

	return responses, nil
}

// VerifyEligible checks that the candidate holds the volunteer role, has a
// profile in the event's state, and is available on the event date.
func (s *matchingServiceImpl) VerifyEligible(ctx context.Context, event *models.Event, volunteerID int64) error {
	user, err := s.userRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return err
	}

	if user.Role != models.RoleVolunteer {
		return apperrors.ErrVolunteerNotEligible
	}

	profile, err := s.volunteerRepo.GetProfile(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrVolunteerNotEligible
		}
		return err
	}

	if profile.State != event.State {
		return apperrors.ErrVolunteerNotEligible
	}

	if !profile.AvailableOn(event.Date) {
		return apperrors.ErrVolunteerNotEligible
	}

	return nil
}
