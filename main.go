// File: carelink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelink/config"
	"carelink/cron"
	"carelink/database"
	affiliationRepoPkg "carelink/database/repository/affiliation"
	appointmentRepoPkg "carelink/database/repository/appointment"
	organizationRepoPkg "carelink/database/repository/organization"
	postRepoPkg "carelink/database/repository/post"
	professionalRepoPkg "carelink/database/repository/professional"
	userRepoPkg "carelink/database/repository/user"
	"carelink/handlers"
	"carelink/routes"
	"carelink/services/appointment"
	"carelink/services/feed"
	"carelink/services/organization"
	"carelink/services/professional"
	"carelink/services/user"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	profRepo := professionalRepoPkg.NewMongoProfessionalRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	orgRepo := organizationRepoPkg.NewMongoOrganizationRepo()
	affRepo := affiliationRepoPkg.NewMongoAffiliationRepo()
	postRepo := postRepoPkg.NewMongoPostRepo()

	for _, ensure := range []func() error{
		userRepo.EnsureIndexes,
		profRepo.EnsureIndexes,
		apptRepo.EnsureIndexes,
		orgRepo.EnsureIndexes,
		affRepo.EnsureIndexes,
		postRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	professionalService := &professional.DefaultProfessionalService{Repo: profRepo}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:             apptRepo,
		ProfessionalRepo: profRepo,
	}
	organizationService := &organization.DefaultOrganizationService{
		Repo:             orgRepo,
		AffiliationRepo:  affRepo,
		ProfessionalRepo: profRepo,
	}
	feedService := &feed.DefaultFeedService{
		Repo:  postRepo,
		Cache: feed.NewRedisFeedCache(utils.GetCacheClient()),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:         userRepo,
		ProfessionalRepo: profRepo,

		User:         handlers.NewUserHandler(userService),
		Professional: handlers.NewProfessionalHandler(professionalService),
		Appointment:  handlers.NewAppointmentHandler(appointmentService),
		Organization: handlers.NewOrganizationHandler(organizationService),
		Post:         handlers.NewPostHandler(feedService),
		Storage:      handlers.NewStorageHandler(cloudinaryStorageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background jobs and health monitoring.
	cronScheduler := cron.StartCronJobs(apptRepo)
	defer cronScheduler.Stop()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.CacheClient, utils.AuthCacheClient},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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

	// Wait for an OS signal to gracefully shutdown.
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
