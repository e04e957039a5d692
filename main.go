package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"clinicbook/config"
	"clinicbook/cron"
	"clinicbook/database"
	appointmentRepoPkg "clinicbook/database/repository/appointment"
	doctorRepoPkg "clinicbook/database/repository/doctor"
	galleryRepoPkg "clinicbook/database/repository/gallery"
	userRepoPkg "clinicbook/database/repository/user"
	"clinicbook/handlers"
	"clinicbook/routes"
	"clinicbook/services/admin"
	"clinicbook/services/doctor"
	"clinicbook/services/gallery"
	"clinicbook/services/identity"
	"clinicbook/services/payment"
	"clinicbook/services/tasks"
	"clinicbook/services/user"
	"clinicbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	config.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	galleryRepo := galleryRepoPkg.NewMongoGalleryRepo()

	identityService := identity.NewFirebaseIdentityService()
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	// services.
	userService := &user.DefaultUserService{
		Repo:       userRepo,
		DoctorRepo: doctorRepo,
		ApptRepo:   apptRepo,
		Identity:   identityService,
		Storage:    storageService,
		Reminders:  reminderScheduler,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo:     doctorRepo,
		ApptRepo: apptRepo,
		Identity: identityService,
	}
	adminService := &admin.DefaultAdminService{
		UserRepo:   userRepo,
		DoctorRepo: doctorRepo,
		ApptRepo:   apptRepo,
		Identity:   identityService,
		Storage:    storageService,
	}
	galleryService := &gallery.DefaultGalleryService{
		Repo:    galleryRepo,
		Storage: storageService,
	}
	paymentService := &payment.StripePaymentService{
		ApptRepo: apptRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		DoctorRepo: doctorRepo,
		Identity:   identityService,

		User:    &handlers.UserHandler{UserService: userService, PaymentSvc: paymentService},
		Doctor:  &handlers.DoctorHandler{DoctorService: doctorService},
		Admin:   &handlers.AdminHandler{AdminService: adminService},
		Gallery: &handlers.GalleryHandler{GallerySvc: galleryService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder delivery.
	cron.InitReminderWorker(apptRepo)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
