package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/red7x7/membership-api/internal/database"
	"github.com/red7x7/membership-api/internal/middleware"
	"github.com/red7x7/membership-api/internal/models"
	"github.com/red7x7/membership-api/internal/repository"
	"github.com/red7x7/membership-api/internal/services"
	"github.com/red7x7/membership-api/internal/token"
)

type testEnv struct {
	db             *gorm.DB
	tokens         *token.Manager
	router         *gin.Engine
	authService    *services.AuthService
	userService    *services.UserService
	meetingService *services.MeetingService
	requestService *services.ContactRequestService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Announcement{},
		&models.Meeting{},
		&models.MeetingParticipant{},
		&models.ContactRequest{},
	)
	require.NoError(t, err)
	require.NoError(t, database.AddIndexes(db))

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	requestRepo := repository.NewContactRequestRepository(db)

	tokens := token.NewManager("test-secret")
	authService := services.NewAuthService(userRepo, requestRepo, tokens)
	userService := services.NewUserService(userRepo, requestRepo)
	announcementService := services.NewAnnouncementService(announcementRepo)
	meetingService := services.NewMeetingService(meetingRepo)
	requestService := services.NewContactRequestService(requestRepo, userRepo)

	env := &testEnv{
		db:             db,
		tokens:         tokens,
		authService:    authService,
		userService:    userService,
		meetingService: meetingService,
		requestService: requestService,
	}
	env.router = buildRouter(env, announcementService, nil)
	return env
}

// buildRouter mirrors the route table in cmd/server.
func buildRouter(env *testEnv, announcementService *services.AnnouncementService, aiService *services.AIService) *gin.Engine {
	authHandler := NewAuthHandler(env.authService)
	userHandler := NewUserHandler(env.userService)
	announcementHandler := NewAnnouncementHandler(announcementService)
	meetingHandler := NewMeetingHandler(env.meetingService, aiService)
	requestHandler := NewContactRequestHandler(env.requestService)

	requireAuth := middleware.RequireAuth(env.tokens)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	r := gin.New()
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", requireAuth, authHandler.Me)
	auth.POST("/forgot-password", authHandler.ForgotPassword)

	announcements := api.Group("/announcements")
	announcements.Use(requireAuth)
	announcements.GET("", announcementHandler.List)
	announcements.POST("", adminOnly, announcementHandler.Create)
	announcements.PUT("/:id", adminOnly, announcementHandler.Update)
	announcements.DELETE("/:id", adminOnly, announcementHandler.Delete)

	meetings := api.Group("/meetings")
	meetings.Use(requireAuth)
	meetings.GET("", meetingHandler.List)
	meetings.GET("/:id", meetingHandler.Get)
	meetings.POST("", adminOnly, meetingHandler.Create)
	meetings.PUT("/:id", middleware.RequireRoles(models.RoleAdmin, models.RolePro), meetingHandler.Update)
	meetings.POST("/ai/summarize", adminOnly, meetingHandler.Summarize)

	users := api.Group("/users")
	users.Use(requireAuth)
	users.GET("/directory", userHandler.Directory)
	users.POST("", adminOnly, userHandler.CreateUser)
	users.PUT("/me", userHandler.UpdateProfile)
	users.PATCH("/:id/role", adminOnly, userHandler.UpdateRole)

	requests := api.Group("/contact-requests")
	requests.Use(requireAuth)
	requests.GET("", requestHandler.List)
	requests.POST("", requestHandler.Create)
	requests.PATCH("/:id/status", requestHandler.UpdateStatus)

	return r
}

func (env *testEnv) createUser(t *testing.T, name, email string, role models.Role, membership models.Membership, phone string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Membership:   membership,
		Phone:        phone,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	signed, err := env.tokens.Issue(user)
	require.NoError(t, err)
	return signed
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
