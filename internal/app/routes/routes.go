package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub/internal/app/controllers"
	"github.com/volunteerhub/volunteerhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	workflowController *controllers.WorkflowController,
	volunteerController *controllers.VolunteerController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Profile and history
		authenticated.GET("/profile", volunteerController.GetProfile)
		authenticated.PUT("/profile", volunteerController.UpdateProfile)
		authenticated.GET("/profile/stats", volunteerController.GetStats)
		authenticated.GET("/history", volunteerController.GetHistory)

		// Notifications
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.ListNotifications)
			notifications.GET("/unread-count", notificationController.GetUnreadCount)
			notifications.POST("/:id/read", notificationController.MarkRead)
			notifications.POST("/read-all", notificationController.MarkAllRead)
			notifications.DELETE("/:id", notificationController.DeleteNotification)
		}

		// Events readable by every authenticated user
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.ListEvents)
			events.GET("/:id", eventController.GetEvent)

			// Event management and lifecycle transitions are admin-only
			eventsAdmin := events.Group("")
			eventsAdmin.Use(authMiddleware.AdminRequired())
			{
				eventsAdmin.POST("", eventController.CreateEvent)
				eventsAdmin.PUT("/:id", eventController.UpdateEvent)
				eventsAdmin.DELETE("/:id", workflowController.DeleteEvent)

				eventsAdmin.GET("/:id/eligible-volunteers", eventController.ListEligibleVolunteers)
				eventsAdmin.POST("/:id/assignments", workflowController.CreateAssignment)
				eventsAdmin.POST("/:id/finalize", workflowController.FinalizeEvent)
				eventsAdmin.POST("/:id/complete", workflowController.CompleteEvent)
				eventsAdmin.GET("/:id/reviews", workflowController.GetReviewSheet)
				eventsAdmin.PUT("/:id/reviews/:volunteerId", workflowController.SubmitReview)
			}
		}

		// Admin-only surfaces
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/reviews/events", workflowController.ListReviewableEvents)
			admin.GET("/admin/dashboard", adminController.GetDashboard)
		}
	}
}
