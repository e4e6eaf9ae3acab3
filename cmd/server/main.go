package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/red7x7/membership-api/internal/config"
	"github.com/red7x7/membership-api/internal/database"
	"github.com/red7x7/membership-api/internal/handlers"
	"github.com/red7x7/membership-api/internal/logger"
	"github.com/red7x7/membership-api/internal/middleware"
	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/repository"
	"github.com/red7x7/membership-api/internal/services"
	"github.com/red7x7/membership-api/internal/token"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLog.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		zapLog.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		zapLog.Fatal("Failed to run migrations", zap.Error(err))
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	requestRepo := repository.NewContactRequestRepository(db)

	// Services
	tokens := token.NewManager(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, requestRepo, tokens)
	userService := services.NewUserService(userRepo, requestRepo)
	announcementService := services.NewAnnouncementService(announcementRepo)
	meetingService := services.NewMeetingService(meetingRepo)
	requestService := services.NewContactRequestService(requestRepo, userRepo)

	var aiService *services.AIService
	if cfg.AIConfigured() {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	} else {
		zapLog.Warn("OPENAI_API_KEY not set, meeting summarization disabled")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	meetingHandler := handlers.NewMeetingHandler(meetingService, aiService)
	requestHandler := handlers.NewContactRequestHandler(requestService)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zapLog))
	r.Use(middleware.Recovery(zapLog))

	requireAuth := middleware.RequireAuth(tokens)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// API routes
	api := r.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
		}

		// Announcement routes (protected)
		announcements := api.Group("/announcements")
		announcements.Use(requireAuth)
		{
			announcements.GET("", announcementHandler.List)
			announcements.POST("", adminOnly, announcementHandler.Create)
			announcements.PUT("/:id", adminOnly, announcementHandler.Update)
			announcements.DELETE("/:id", adminOnly, announcementHandler.Delete)
		}

		// Meeting routes (protected)
		meetings := api.Group("/meetings")
		meetings.Use(requireAuth)
		{
			meetings.GET("", meetingHandler.List)
			meetings.GET("/:id", meetingHandler.Get)
			meetings.POST("", adminOnly, meetingHandler.Create)
			meetings.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RolePro), meetingHandler.Update)
			meetings.POST("/ai/summarize", adminOnly, meetingHandler.Summarize)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/directory", userHandler.Directory)
			users.POST("", adminOnly, userHandler.CreateUser)
			users.PUT("/me", userHandler.UpdateProfile)
			users.PATCH("/:id/role", adminOnly, userHandler.UpdateRole)
		}

		// Contact request routes (protected)
		requests := api.Group("/contact-requests")
		requests.Use(requireAuth)
		{
			requests.GET("", requestHandler.List)
			requests.POST("", requestHandler.Create)
			requests.PATCH("/:id/status", requestHandler.UpdateStatus)
		}
	}

	// Start server
	zapLog.Info("Server starting", zap.String("addr", cfg.ServerAddr()))
	if err := r.Run(cfg.ServerAddr()); err != nil {
		zapLog.Fatal("Failed to start server", zap.Error(err))
	}
}
