package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinicbook/handlers"
	"clinicbook/middleware"
)

// RegisterUserRoutes registers the patient app endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)
		api.POST("/google-auth", hb.User.GoogleAuthHandler)

		// Public directory and slot browsing.
		api.GET("/doctors", hb.Doctor.ListHandler)
		api.GET("/doctors/:docId/slots", hb.User.AvailableSlotsHandler)

		// Protected routes (require authentication).
		api.Use(middleware.AuthUser(hb.Identity, hb.UserRepo))
		api.GET("/profile", hb.User.ProfileHandler)
		api.PUT("/profile", hb.User.UpdateProfileHandler)
		api.POST("/appointments", hb.User.BookAppointmentHandler)
		api.GET("/appointments", hb.User.ListAppointmentsHandler)
		api.POST("/appointments/cancel", hb.User.CancelAppointmentHandler)
		api.POST("/payments", hb.User.CreatePaymentHandler)
		api.POST("/payments/verify", hb.User.VerifyPaymentHandler)
	}
}

// RegisterDoctorRoutes registers the doctor panel endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctor")
	{
		api.POST("/login", hb.Doctor.LoginHandler)
		api.POST("/google-link", hb.Doctor.GoogleLinkHandler)

		api.Use(middleware.AuthDoctor(hb.Identity, hb.DoctorRepo))
		api.GET("/profile", hb.Doctor.ProfileHandler)
		api.PUT("/profile", hb.Doctor.UpdateProfileHandler)
		api.POST("/availability/toggle", hb.Doctor.ToggleAvailabilityHandler)
		api.GET("/appointments", hb.Doctor.ListAppointmentsHandler)
		api.POST("/appointments/cancel", hb.Doctor.CancelAppointmentHandler)
		api.POST("/appointments/complete", hb.Doctor.CompleteAppointmentHandler)
		api.GET("/dashboard", hb.Doctor.DashboardHandler)
	}
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.LoginHandler)

		api.Use(middleware.AuthAdmin())
		api.POST("/doctors", hb.Admin.AddDoctorHandler)
		api.GET("/doctors", hb.Admin.AllDoctorsHandler)
		api.POST("/doctors/availability", hb.Admin.ChangeAvailabilityHandler)
		api.DELETE("/doctors/:docId", hb.Admin.DeleteDoctorHandler)
		api.GET("/appointments", hb.Admin.AllAppointmentsHandler)
		api.POST("/appointments/cancel", hb.Admin.CancelAppointmentHandler)
		api.POST("/appointments/complete", hb.Admin.CompleteAppointmentHandler)
		api.GET("/dashboard", hb.Admin.DashboardHandler)
		api.GET("/patients", hb.Admin.PatientsHandler)
		api.POST("/prescriptions", hb.Admin.UploadPrescriptionHandler)
		api.DELETE("/patients", hb.Admin.PurgePatientsHandler)
		api.POST("/gallery", hb.Gallery.UploadHandler)
		api.DELETE("/gallery/:id", hb.Gallery.DeleteHandler)
	}
}

// RegisterGalleryRoutes registers the public gallery listing.
func RegisterGalleryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/gallery", hb.Gallery.ListHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
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

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterGalleryRoutes(r, hb)
}
