package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub/internal/app/models"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/repositories"
	"github.com/volunteerhub/volunteerhub/internal/pkg/apperrors"
	"github.com/volunteerhub/volunteerhub/internal/pkg/helpers"
	"github.com/volunteerhub/volunteerhub/internal/pkg/validation"
)

// EventService defines the interface for event CRUD and listings.
// Lifecycle transitions live in WorkflowService.
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	GetEvent(ctx context.Context, id int64) (*dto.EventDetailResponse, error)
	ListEvents(ctx context.Context, filter dto.EventFilterRequest) (*dto.EventListResponse, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo      *repositories.EventRepository
	assignmentRepo *repositories.AssignmentRepository
	logger         zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo *repositories.EventRepository,
	assignmentRepo *repositories.AssignmentRepository,
	logger zerolog.Logger,
) EventService {
	return &eventServiceImpl{
		eventRepo:      eventRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func buildEventFromRequest(name, description, location, city, state, zip, dateStr, urgency string,
	duration int, skills []string, needed int) (*models.Event, error) {

	if !validation.IsValidState(state) {
		return nil, apperrors.NewValidationError("state must be a two-letter code")
	}
	if !validation.IsValidZip(zip) {
		return nil, apperrors.NewValidationError("zip must be a valid US postal code")
	}

	u := models.Urgency(urgency)
	if !u.Valid() {
		return nil, apperrors.NewValidationError("urgency must be Low, Medium or High")
	}

	date, err := helpers.ParseDate(dateStr)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}
	if helpers.DateBeforeToday(date) {
		return nil, apperrors.NewValidationError("event date cannot be in the past")
	}

	return &models.Event{
		Name:             name,
		Description:      description,
		LocationName:     location,
		City:             city,
		State:            state,
		Zip:              zip,
		Date:             date,
		DurationHours:    duration,
		Urgency:          u,
		RequiredSkills:   skills,
		VolunteersNeeded: needed,
	}, nil
}

// CreateEvent validates and stores a new event in the Pending state
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	s.logger.Debug().Str("name", req.Name).Msg("Creating event")

	event, err := buildEventFromRequest(req.Name, req.Description, req.LocationName,
		req.City, req.State, req.Zip, req.Date, req.Urgency,
		req.DurationHours, req.RequiredSkills, req.VolunteersNeeded)
	if err != nil {
		return nil, err
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create event")
		return nil, err
	}

	created, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromEvent(created)
	return &resp, nil
}

// UpdateEvent rewrites a pending event's details. Capacity cannot drop
// below the number of volunteers already registered.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	s.logger.Debug().Int64("eventID", id).Msg("Updating event")

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.Status != models.EventPending {
		return nil, apperrors.ErrEventNotPending
	}

	if req.VolunteersNeeded < existing.VolunteersRegistered {
		return nil, apperrors.ErrCapacityBelowRegistered
	}

	event, err := buildEventFromRequest(req.Name, req.Description, req.LocationName,
		req.City, req.State, req.Zip, req.Date, req.Urgency,
		req.DurationHours, req.RequiredSkills, req.VolunteersNeeded)
	if err != nil {
		return nil, err
	}
	event.ID = id

	if err := s.eventRepo.Update(ctx, event); err != nil {
		s.logger.Error().Err(err).Int64("eventID", id).Msg("Failed to update event")
		return nil, err
	}

	updated, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromEvent(updated)
	return &resp, nil
}

// GetEvent returns an event with its assignments
func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*dto.EventDetailResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.EventDetailResponse{
		EventResponse: dto.FromEvent(event),
		Assignments:   make([]dto.AssignmentResponse, 0, len(assignments)),
	}
	for _, a := range assignments {
		detail.Assignments = append(detail.Assignments, dto.FromAssignment(a))
	}

	return detail, nil
}

// ListEvents returns events matching the filter with pagination
func (s *eventServiceImpl) ListEvents(ctx context.Context, filter dto.EventFilterRequest) (*dto.EventListResponse, error) {
	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list events")
		return nil, err
	}

	resp := &dto.EventListResponse{
		Events:     make([]dto.EventResponse, 0, len(events)),
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, dto.FromEvent(e))
	}

	return resp, nil
}
