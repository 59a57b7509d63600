package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakibul/unibus/internal/app/controllers"
	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	scheduleController *controllers.ScheduleController,
	feedbackController *controllers.FeedbackController,
	complaintController *controllers.ComplaintController,
	noticeController *controllers.NoticeController,
	authMiddleware *middleware.AuthMiddleware,
	authLimiter *middleware.RateLimiter,
	submitLimiter *middleware.RateLimiter,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
		auth.GET("/oauth/google/url", authController.GoogleAuthURL)
		auth.POST("/oauth/google", authController.GoogleSignIn)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.PUT("/me", userController.UpdateProfile)
		}

		// Schedules (read-only for students)
		schedules := authenticated.Group("/schedules")
		{
			schedules.GET("", scheduleController.ListSchedules)
			schedules.GET("/:id", scheduleController.GetSchedule)
		}

		// Feedback
		feedback := authenticated.Group("/feedback")
		{
			feedback.GET("", feedbackController.ListMyFeedback)
			feedback.POST("", submitLimiter.Middleware(), feedbackController.CreateFeedback)
		}

		// Complaints
		complaints := authenticated.Group("/complaints")
		{
			complaints.GET("", complaintController.ListMyComplaints)
			complaints.GET("/:id", complaintController.GetComplaint)
			complaints.POST("", submitLimiter.Middleware(), complaintController.CreateComplaint)
		}

		// Notices and the live feed
		notices := authenticated.Group("/notices")
		{
			notices.GET("", noticeController.ListNotices)
			notices.GET("/ws", noticeController.NoticeFeed)
			notices.GET("/:id", noticeController.GetNotice)
		}

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			adminSchedules := admin.Group("/schedules")
			{
				adminSchedules.POST("", scheduleController.CreateSchedule)
				adminSchedules.PUT("/:id", scheduleController.UpdateSchedule)
				adminSchedules.DELETE("/:id", scheduleController.DeleteSchedule)
			}

			admin.GET("/feedback", feedbackController.ListAllFeedback)

			adminComplaints := admin.Group("/complaints")
			{
				adminComplaints.GET("", complaintController.ListAllComplaints)
				adminComplaints.PATCH("/:id/status", complaintController.UpdateComplaintStatus)
			}

			adminNotices := admin.Group("/notices")
			{
				adminNotices.POST("", noticeController.CreateNotice)
				adminNotices.PUT("/:id", noticeController.UpdateNotice)
				adminNotices.DELETE("/:id", noticeController.DeleteNotice)
			}
		}
	}
}
