package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/plantify-app/plantify-backend/internal/config"
	"github.com/plantify-app/plantify-backend/internal/database"
	"github.com/plantify-app/plantify-backend/internal/handlers"
	"github.com/plantify-app/plantify-backend/internal/jobs"
	"github.com/plantify-app/plantify-backend/internal/models"
	"github.com/plantify-app/plantify-backend/internal/repository"
	scheduler "github.com/plantify-app/plantify-backend/internal/scheduler"
	"github.com/plantify-app/plantify-backend/internal/services"
	"github.com/plantify-app/plantify-backend/internal/storage"
	"github.com/plantify-app/plantify-backend/pkg/logger"
	"github.com/plantify-app/plantify-backend/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	uploader, err := storage.NewCloudinaryUploader(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("Cloudinary setup error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	plantRepo := repository.NewPlantRepository(db)
	pomodoroRepo := repository.NewPomodoroRepository(db)
	postRepo := repository.NewPostRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	fileRepo := repository.NewFileRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	sessionService := services.NewSessionService(userRepo, plantRepo)
	pomodoroService := services.NewPomodoroService(pomodoroRepo)
	plantService := services.NewPlantService(plantRepo, userRepo)
	postService := services.NewPostService(postRepo, userRepo)
	donationService := services.NewDonationService(donationRepo, userRepo)
	partnerService := services.NewPartnerService(partnerRepo)
	challengeService := services.NewChallengeService(challengeRepo)
	adminService := services.NewAdminService(userRepo, plantRepo, donationRepo)
	fileService := services.NewFileService(uploader, fileRepo, cfg.UploadFolder)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	pomodoroHandler := handlers.NewPomodoroHandler(pomodoroService)
	plantHandler := handlers.NewPlantHandler(plantService)
	postHandler := handlers.NewPostHandler(postService)
	donationHandler := handlers.NewDonationHandler(donationService)
	partnerHandler := handlers.NewPartnerHandler(partnerService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	adminHandler := handlers.NewAdminHandler(adminService, userService)
	uploadHandler := handlers.NewUploadHandler(fileService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	// Session completion (the tree-planting pipeline)
	api.HandleFunc("/sessions/complete", sessionHandler.CompleteSessionHandler).Methods("POST")

	// Pomodoro timer routes
	api.HandleFunc("/pomodoro", pomodoroHandler.CreatePomodoroHandler).Methods("POST")
	api.HandleFunc("/pomodoro", pomodoroHandler.GetAllPomodorosHandler).Methods("GET")
	api.HandleFunc("/pomodoro/{id}/start", pomodoroHandler.StartPomodoroHandler).Methods("PUT")
	api.HandleFunc("/pomodoro/{id}/pause", pomodoroHandler.PausePomodoroHandler).Methods("PUT")
	api.HandleFunc("/pomodoro/{id}/resume", pomodoroHandler.ResumePomodoroHandler).Methods("PUT")
	api.HandleFunc("/pomodoro/{id}/complete", pomodoroHandler.CompleteRoundHandler).Methods("PUT")
	api.HandleFunc("/pomodoro/{id}", pomodoroHandler.DeletePomodoroHandler).Methods("DELETE")

	// User routes. Leaderboard is registered before {id} so "leaderboard"
	// never parses as an ObjectID.
	api.HandleFunc("/users", userHandler.RegisterUserHandler).Methods("POST")
	api.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")
	api.HandleFunc("/users", userHandler.GetUsersHandler).Methods("GET")
	api.HandleFunc("/users/leaderboard", userHandler.GetLeaderboardHandler).Methods("GET")
	api.HandleFunc("/users/{id}", userHandler.GetUserHandler).Methods("GET")
	api.HandleFunc("/users/{id}/stats", userHandler.GetUserStatsHandler).Methods("GET")
	api.HandleFunc("/users/{id}", userHandler.UpdateUserHandler).Methods("PUT")
	api.HandleFunc("/users/{id}", userHandler.PatchUserHandler).Methods("PATCH")
	api.HandleFunc("/users/{id}", userHandler.DeleteUserHandler).Methods("DELETE")

	// Virtual forest routes
	api.HandleFunc("/plants", plantHandler.GetPlantsHandler).Methods("GET")
	api.HandleFunc("/plants", plantHandler.CreatePlantHandler).Methods("POST")
	api.HandleFunc("/plants/{id}", plantHandler.GetPlantHandler).Methods("GET")
	api.HandleFunc("/plants/{id}", plantHandler.UpdatePlantHandler).Methods("PUT")
	api.HandleFunc("/plants/{id}", plantHandler.DeletePlantHandler).Methods("DELETE")

	// Community feed routes
	api.HandleFunc("/posts", postHandler.GetPostsHandler).Methods("GET")
	api.HandleFunc("/posts", postHandler.CreatePostHandler).Methods("POST")
	api.HandleFunc("/posts/{id}", postHandler.GetPostHandler).Methods("GET")
	api.HandleFunc("/posts/{id}", postHandler.UpdatePostHandler).Methods("PUT")
	api.HandleFunc("/posts/{id}", postHandler.DeletePostHandler).Methods("DELETE")
	api.HandleFunc("/posts/{id}/like", postHandler.LikePostHandler).Methods("POST")
	api.HandleFunc("/posts/{id}/comment", postHandler.CommentPostHandler).Methods("POST")

	// Donation routes
	api.HandleFunc("/donations", donationHandler.GetDonationsHandler).Methods("GET")
	api.HandleFunc("/donations", donationHandler.CreateDonationHandler).Methods("POST")
	api.HandleFunc("/donations/{id}", donationHandler.UpdateDonationHandler).Methods("PUT")
	api.HandleFunc("/donations/{id}", donationHandler.DeleteDonationHandler).Methods("DELETE")

	// Partner routes
	api.HandleFunc("/partners", partnerHandler.GetPartnersHandler).Methods("GET")
	api.HandleFunc("/partners", partnerHandler.CreatePartnerHandler).Methods("POST")
	api.HandleFunc("/partners/{id}", partnerHandler.GetPartnerHandler).Methods("GET")
	api.HandleFunc("/partners/{id}", partnerHandler.UpdatePartnerHandler).Methods("PUT")
	api.HandleFunc("/partners/{id}", partnerHandler.DeletePartnerHandler).Methods("DELETE")

	// Challenge routes
	api.HandleFunc("/challenges", challengeHandler.GetChallengesHandler).Methods("GET")
	api.HandleFunc("/challenges", challengeHandler.CreateChallengeHandler).Methods("POST")
	api.HandleFunc("/challenges/{id}", challengeHandler.UpdateChallengeHandler).Methods("PUT")
	api.HandleFunc("/challenges/{id}", challengeHandler.DeleteChallengeHandler).Methods("DELETE")

	// Upload routes
	api.HandleFunc("/upload", uploadHandler.UploadImageHandler).Methods("POST")
	api.HandleFunc("/files", uploadHandler.UploadFilesHandler).Methods("POST")
	api.HandleFunc("/files/{id}", uploadHandler.GetFileHandler).Methods("GET")

	// Admin routes (JWT + ADMIN role required)
	adminRoutes := api.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
	adminRoutes.HandleFunc("/stats", adminHandler.GetStatsHandler).Methods("GET")
	adminRoutes.HandleFunc("/analytics", adminHandler.GetAnalyticsHandler).Methods("GET")
	adminRoutes.HandleFunc("/users", adminHandler.GetAllUsersHandler).Methods("GET")
	adminRoutes.HandleFunc("/users/{id}/role", adminHandler.UpdateUserRoleHandler).Methods("PUT")
	adminRoutes.HandleFunc("/users/{id}", adminHandler.HardDeleteUserHandler).Methods("DELETE")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Kick off the nightly streak reset
	resetter := jobs.NewStreakResetter(userRepo)
	scheduler.StartCronJobs(resetter)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
