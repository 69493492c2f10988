package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub/internal/app/models/dto"
	"github.com/volunteerhub/volunteerhub/internal/app/services"
	"github.com/volunteerhub/volunteerhub/internal/middleware"
)

// AdminController handles administrator-only queries
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetDashboard handles the admin dashboard query
// @Summary Get admin dashboard
// @Description Returns platform statistics, the volunteer leaderboard and upcoming events. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/dashboard [get]
func (c *AdminController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.adminService.GetDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}
