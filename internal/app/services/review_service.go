package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/repositories"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
)

// ReviewService provides the read side of the review workflow: which
// finalized events still need reviews, and the per-volunteer review sheet
// for one event. Review submission itself goes through WorkflowService.
type ReviewService interface {
	ListReviewableEvents(ctx context.Context) ([]dto.ReviewEventSummary, error)
	GetReviewSheet(ctx context.Context, eventID int64) (*dto.ReviewSheetResponse, error)
}

// reviewServiceImpl implements ReviewService
type reviewServiceImpl struct {
	eventRepo      *repositories.EventRepository
	assignmentRepo *repositories.AssignmentRepository
	logger         zerolog.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	eventRepo *repositories.EventRepository,
	assignmentRepo *repositories.AssignmentRepository,
	logger zerolog.Logger,
) ReviewService {
	return &reviewServiceImpl{
		eventRepo:      eventRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// ListReviewableEvents returns finalized events with their review progress
func (s *reviewServiceImpl) ListReviewableEvents(ctx context.Context) ([]dto.ReviewEventSummary, error) {
	status := string(models.EventFinalized)
	events, _, err := s.eventRepo.List(ctx, dto.EventFilterRequest{
		Status:   &status,
		Page:     1,
		PageSize: 100,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list finalized events")
		return nil, err
	}

	summaries := make([]dto.ReviewEventSummary, 0, len(events))
	for _, event := range events {
		assignments, err := s.assignmentRepo.ListByEvent(ctx, event.ID)
		if err != nil {
			return nil, err
		}

		pending := 0
		for _, a := range assignments {
			if a.NeedsReview {
				pending++
			}
		}

		summaries = append(summaries, dto.ReviewEventSummary{
			ID:              event.ID,
			Name:            event.Name,
			Date:            event.Date.Format("2006-01-02"),
			LocationName:    event.LocationName,
			Description:     event.Description,
			Status:          string(event.Status),
			TotalVolunteers: len(assignments),
			PendingReviews:  pending,
			CanComplete:     pending == 0,
		})
	}

	return summaries, nil
}

// GetReviewSheet returns an event's assignments for the review screen
func (s *reviewServiceImpl) GetReviewSheet(ctx context.Context, eventID int64) (*dto.ReviewSheetResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Status != models.EventFinalized {
		return nil, apperrors.ErrEventNotFinalized
	}

	assignments, err := s.assignmentRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	sheet := &dto.ReviewSheetResponse{
		EventName:  event.Name,
		Volunteers: make([]dto.AssignmentResponse, 0, len(assignments)),
	}
	for _, a := range assignments {
		sheet.Volunteers = append(sheet.Volunteers, dto.FromAssignment(a))
	}

	return sheet, nil
}
