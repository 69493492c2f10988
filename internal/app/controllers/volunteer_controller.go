package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/services"
	"github.com/volunteerhub/volunteerhub/internal/middleware"
)

// VolunteerController handles volunteer profile, history and statistics
type VolunteerController struct {
	volunteerService services.VolunteerService
}

// NewVolunteerController creates a new VolunteerController
func NewVolunteerController(volunteerService services.VolunteerService) *VolunteerController {
	return &VolunteerController{
		volunteerService: volunteerService,
	}
}

// GetProfile handles retrieving the caller's profile
// @Summary Get my profile
// @Description Retrieves the authenticated volunteer's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved"
// @Failure 404 {object} dto.ErrorResponse "Profile not filled in yet"
// @Router /profile [get]
func (c *VolunteerController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	profile, err := c.volunteerService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile handles creating or updating the caller's profile
// @Summary Update my profile
// @Description Creates or replaces the authenticated volunteer's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile details"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /profile [put]
func (c *VolunteerController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.volunteerService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetHistory handles retrieving assignment history
// @Summary Get event history
// @Description Volunteers see their own assignment history; admins see everyone's
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.HistoryResponse} "History retrieved"
// @Router /history [get]
func (c *VolunteerController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	history, err := c.volunteerService.GetHistory(ctx.Request.Context(), userID, middleware.IsAdmin(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(history))
}

// GetStats handles retrieving the caller's performance aggregates
// @Summary Get my statistics
// @Description Returns events attended, average rating and total hours for the authenticated volunteer
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.VolunteerStatsResponse} "Statistics retrieved"
// @Router /profile/stats [get]
func (c *VolunteerController) GetStats(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	stats, err := c.volunteerService.GetStats(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
