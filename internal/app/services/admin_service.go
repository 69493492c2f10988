package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/repositories"
)

const (
	topVolunteersLimit  = 5
	upcomingEventsLimit = 5
)

// AdminService assembles the administrator dashboard
type AdminService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	userRepo       *repositories.UserRepository
	eventRepo      *repositories.EventRepository
	assignmentRepo *repositories.AssignmentRepository
	volunteerRepo  *repositories.VolunteerRepository
	logger         zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo *repositories.UserRepository,
	eventRepo *repositories.EventRepository,
	assignmentRepo *repositories.AssignmentRepository,
	volunteerRepo *repositories.VolunteerRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		assignmentRepo: assignmentRepo,
		volunteerRepo:  volunteerRepo,
		logger:         logger,
	}
}

// GetDashboard returns platform-wide statistics, the volunteer leaderboard
// and the next upcoming events
func (s *adminServiceImpl) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	s.logger.Debug().Msg("Building admin dashboard")

	totalVolunteers, err := s.userRepo.CountByRole(ctx, models.RoleVolunteer)
	if err != nil {
		return nil, err
	}

	pendingEvents, err := s.eventRepo.CountByStatus(ctx, models.EventPending)
	if err != nil {
		return nil, err
	}
	finalizedEvents, err := s.eventRepo.CountByStatus(ctx, models.EventFinalized)
	if err != nil {
		return nil, err
	}
	completedEvents, err := s.eventRepo.CountByStatus(ctx, models.EventCompleted)
	if err != nil {
		return nil, err
	}

	pendingReviews, err := s.assignmentRepo.CountPendingReviewsTotal(ctx)
	if err != nil {
		return nil, err
	}

	totalHours, avgRating, err := s.volunteerRepo.AggregateStats(ctx)
	if err != nil {
		return nil, err
	}

	topRows, err := s.volunteerRepo.ListTop(ctx, topVolunteersLimit)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.eventRepo.ListUpcoming(ctx, upcomingEventsLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Statistics: dto.DashboardStatistics{
			TotalVolunteers:     totalVolunteers,
			PendingEvents:       pendingEvents,
			FinalizedEvents:     finalizedEvents,
			CompletedEvents:     completedEvents,
			PendingReviews:      pendingReviews,
			TotalVolunteerHours: totalHours,
			AverageRating:       avgRating,
		},
		TopVolunteers:  make([]dto.TopVolunteer, 0, len(topRows)),
		UpcomingEvents: make([]dto.EventResponse, 0, len(upcoming)),
	}

	for _, row := range topRows {
		resp.TopVolunteers = append(resp.TopVolunteers, dto.TopVolunteer{
			UserID:         row.UserID,
			FullName:       row.FullName,
			Email:          row.Email,
			EventsAttended: row.EventsAttended,
			AverageRating:  row.AverageRating,
			TotalHours:     row.TotalHours,
		})
	}
	for _, event := range upcoming {
		resp.UpcomingEvents = append(resp.UpcomingEvents, dto.FromEvent(event))
	}

	return resp, nil
}
