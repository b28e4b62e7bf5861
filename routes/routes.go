package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"carelink/handlers"
	"carelink/middleware"
)

// RegisterUserRoutes registers patient account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		// Protected routes.
		api.Use(middleware.UserAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetProfileHandler)
		api.PUT("/me", hb.User.UpdateProfileHandler)
		api.PUT("/me/password", hb.User.UpdatePasswordHandler)
		api.POST("/logout", hb.User.LogoutHandler)
		api.DELETE("/me", hb.User.DeleteHandler)
	}
}

// RegisterProfessionalRoutes registers professional account and profile
// endpoints, including the public slot query.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		api.POST("/register", hb.Professional.RegisterHandler)
		api.POST("/login", hb.Professional.LoginHandler)

		// Public directory endpoints.
		api.GET("", hb.Professional.SearchHandler)
		api.GET("/:id", hb.Professional.GetByIDHandler)
		api.GET("/:id/availability", hb.Professional.GetAvailabilityHandler)
		api.GET("/:id/slots", hb.Appointment.SlotsHandler)

		// Endpoints that modify professional data require authentication.
		protected := api.Group("")
		protected.Use(middleware.ProfessionalAuthMiddleware(hb.ProfessionalRepo))
		protected.PUT("/me", hb.Professional.UpdateProfileHandler)
		protected.PUT("/me/password", hb.Professional.UpdatePasswordHandler)
		protected.PUT("/me/availability", hb.Professional.UpdateAvailabilityHandler)
		protected.POST("/logout", hb.Professional.LogoutHandler)
	}
}

// RegisterAppointmentRoutes registers booking and review endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		patient := api.Group("")
		patient.Use(middleware.UserAuthMiddleware(hb.UserRepo))
		patient.POST("", hb.Appointment.BookHandler)
		patient.GET("/mine", hb.Appointment.MyAppointmentsHandler)
		patient.PUT("/:id/accept-reschedule", hb.Appointment.AcceptRescheduleHandler)

		professional := api.Group("")
		professional.Use(middleware.ProfessionalAuthMiddleware(hb.ProfessionalRepo))
		professional.GET("/schedule", hb.Appointment.ProfessionalAppointmentsHandler)
		professional.PUT("/:id/approve", hb.Appointment.ApproveHandler)
		professional.PUT("/:id/reject", hb.Appointment.RejectHandler)
		professional.PUT("/:id/reschedule", hb.Appointment.RescheduleHandler)
		professional.PUT("/:id/complete", hb.Appointment.CompleteHandler)

		// Either side may cancel.
		shared := api.Group("")
		shared.Use(middleware.AnyAuthMiddleware(hb.UserRepo, hb.ProfessionalRepo))
		shared.PUT("/:id/cancel", hb.Appointment.CancelHandler)
	}
}

// RegisterOrganizationRoutes registers directory and affiliation endpoints.
func RegisterOrganizationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/organizations")
	{
		api.GET("", hb.Organization.ListHandler)
		api.GET("/:id", hb.Organization.GetHandler)

		admin := api.Group("")
		admin.Use(middleware.UserAuthMiddleware(hb.UserRepo))
		admin.POST("", hb.Organization.CreateHandler)
		admin.PUT("/:id", hb.Organization.UpdateHandler)
		admin.GET("/:id/affiliations/pending", hb.Organization.PendingAffiliationsHandler)

		professional := api.Group("")
		professional.Use(middleware.ProfessionalAuthMiddleware(hb.ProfessionalRepo))
		professional.POST("/:id/affiliations", hb.Organization.RequestAffiliationHandler)
	}

	aff := r.Group("/api/affiliations")
	{
		aff.POST("/:id/review", middleware.UserAuthMiddleware(hb.UserRepo), hb.Organization.ReviewAffiliationHandler)
		aff.GET("/mine", middleware.ProfessionalAuthMiddleware(hb.ProfessionalRepo), hb.Organization.MyAffiliationsHandler)
	}
}

// RegisterPostRoutes registers the community feed endpoints.
func RegisterPostRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/posts")
	{
		api.Use(middleware.AnyAuthMiddleware(hb.UserRepo, hb.ProfessionalRepo))
		api.GET("", hb.Post.FeedHandler)
		api.GET("/author/:id", hb.Post.ByAuthorHandler)
		api.POST("", hb.Post.PublishHandler)
		api.DELETE("/:id", hb.Post.DeleteHandler)
		api.POST("/:id/like", hb.Post.LikeHandler)
		api.POST("/:id/unlike", hb.Post.UnlikeHandler)
	}
}

// RegisterStorageRoutes registers media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.AnyAuthMiddleware(hb.UserRepo, hb.ProfessionalRepo))
		api.POST("/:bucket", hb.Storage.UploadFileHandler)
		api.GET("/:bucket/:filename", hb.Storage.GetDownloadURLHandler)
		api.DELETE("/:bucket/:filename", hb.Storage.DeleteFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterOrganizationRoutes(r, hb)
	RegisterPostRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
