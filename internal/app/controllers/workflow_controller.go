package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/services"
	"github.com/volunteerhub/volunteerhub/internal/middleware"
)

// WorkflowController handles event lifecycle transitions: assignment,
// finalization, review and completion
type WorkflowController struct {
	workflowService services.WorkflowService
	reviewService   services.ReviewService
}

// NewWorkflowController creates a new WorkflowController
func NewWorkflowController(workflowService services.WorkflowService, reviewService services.ReviewService) *WorkflowController {
	return &WorkflowController{
		workflowService: workflowService,
		reviewService:   reviewService,
	}
}

// CreateAssignment handles matching a volunteer to an event
// @Summary Assign a volunteer to an event
// @Description Creates an assignment for a pending event with remaining capacity. Admin only.
// @Tags workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.CreateAssignmentRequest true "Volunteer to assign"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment created"
// @Failure 404 {object} dto.ErrorResponse "Event or volunteer not found"
// @Failure 409 {object} dto.ErrorResponse "Already assigned, not pending, fully staffed or not eligible"
// @Router /events/{id}/assignments [post]
func (c *WorkflowController) CreateAssignment(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	err := c.workflowService.CreateAssignment(ctx.Request.Context(), eventID, req.VolunteerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Volunteer assigned"}))
}

// FinalizeEvent handles the Pending to Finalized transition
// @Summary Finalize event
// @Description Moves a fully staffed pending event to Finalized and notifies its volunteers. Admin only.
// @Tags workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event finalized"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Event is not pending or not fully staffed"
// @Router /events/{id}/finalize [post]
func (c *WorkflowController) FinalizeEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.workflowService.FinalizeEvent(ctx.Request.Context(), eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event finalized"}))
}

// SubmitReview handles recording a participation outcome
// @Summary Submit a volunteer review
// @Description Records the participation outcome for one assignment of a finalized event. A "Volunteered" outcome requires a 1-5 rating. Admin only.
// @Tags workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param volunteerId path int true "Volunteer ID"
// @Param request body dto.SubmitReviewRequest true "Review outcome"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Review recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid status or missing rating"
// @Failure 404 {object} dto.ErrorResponse "Event or assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Event is not finalized"
// @Router /events/{id}/reviews/{volunteerId} [put]
func (c *WorkflowController) SubmitReview(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	volunteerID, ok := parseIDParam(ctx, "volunteerId")
	if !ok {
		return
	}

	var req dto.SubmitReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	err := c.workflowService.SubmitReview(ctx.Request.Context(), eventID, volunteerID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Review recorded"}))
}

// CompleteEvent handles the Finalized to Completed transition
// @Summary Complete event
// @Description Moves a finalized event to Completed once every assignment is reviewed. Admin only.
// @Tags workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event completed"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Event is not finalized or reviews are still pending"
// @Router /events/{id}/complete [post]
func (c *WorkflowController) CompleteEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.workflowService.CompleteEvent(ctx.Request.Context(), eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event completed"}))
}

// DeleteEvent handles removing a pending event
// @Summary Delete event
// @Description Removes a pending event and sends each assigned volunteer a cancellation notice. Admin only.
// @Tags workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Only pending events can be deleted"
// @Router /events/{id} [delete]
func (c *WorkflowController) DeleteEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.workflowService.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event deleted"}))
}

// ListReviewableEvents handles listing finalized events with review progress
// @Summary List events awaiting review
// @Description Returns finalized events with pending review counts and whether each can be completed. Admin only.
// @Tags workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ReviewEventSummary} "Events retrieved"
// @Router /reviews/events [get]
func (c *WorkflowController) ListReviewableEvents(ctx *gin.Context) {
	summaries, err := c.reviewService.ListReviewableEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries))
}

// GetReviewSheet handles retrieving the per-volunteer review sheet
// @Summary Get review sheet
// @Description Returns a finalized event's assignments for the review screen. Admin only.
// @Tags workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReviewSheetResponse} "Sheet retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Event is not finalized"
// @Router /events/{id}/reviews [get]
func (c *WorkflowController) GetReviewSheet(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sheet, err := c.reviewService.GetReviewSheet(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sheet))
}
