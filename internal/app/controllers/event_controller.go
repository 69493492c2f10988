package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/services"
	"github.com/volunteerhub/volunteerhub/internal/middleware"
	"github.com/volunteerhub/volunteerhub/internal/pkg/helpers"
)

// EventController handles event CRUD and matching queries
type EventController struct {
	eventService    services.EventService
	matchingService services.MatchingService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, matchingService services.MatchingService) *EventController {
	return &EventController{
		eventService:    eventService,
		matchingService: matchingService,
	}
}

// ListEvents handles retrieving events with optional filtering
// @Summary List events
// @Description Retrieves events with optional status, urgency and text filters, paginated
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by lifecycle status" Enums(Pending,Finalized,Completed)
// @Param urgency query string false "Filter by urgency" Enums(Low,Medium,High)
// @Param search query string false "Search name, description or city"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := dto.EventFilterRequest{Page: page, PageSize: size}
	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}
	if urgency := ctx.Query("urgency"); urgency != "" {
		filter.Urgency = &urgency
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	response, err := c.eventService.ListEvents(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetEvent handles retrieving a single event with its assignments
// @Summary Get event by ID
// @Description Retrieves an event with its assignment roster
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventDetailResponse} "Event retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// CreateEvent handles creating a new event
// @Summary Create event
// @Description Creates a new event in the Pending state. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// UpdateEvent handles updating a pending event
// @Summary Update event
// @Description Rewrites a pending event's details. Capacity cannot drop below the registered count. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event details"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event updated"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Event is not pending or capacity below registered"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// ListEligibleVolunteers handles the matching query for an event
// @Summary List eligible volunteers
// @Description Returns unassigned volunteers whose state matches the event and whose availability covers the event date. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EligibleVolunteerResponse} "Candidates retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/eligible-volunteers [get]
func (c *EventController) ListEligibleVolunteers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	volunteers, err := c.matchingService.ListEligibleVolunteers(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(volunteers))
}
