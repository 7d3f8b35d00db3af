package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dealhub.backend/internal/config"
	domainrepos "dealhub.backend/internal/domain/repositories"
	"dealhub.backend/internal/infrastructure/jobs"
	"dealhub.backend/internal/infrastructure/mail"
	"dealhub.backend/internal/infrastructure/repositories"
	"dealhub.backend/internal/interfaces/http/handlers"
	"dealhub.backend/internal/interfaces/http/middleware"
	"dealhub.backend/internal/usecases"
	"dealhub.backend/pkg/jwt"
	"dealhub.backend/pkg/logger"
	"dealhub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	credentialRepo := repositories.NewCredentialRepository(db)
	waitlistRepo := repositories.NewWaitlistRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize mailer
	mailCfg := mail.Config{
		BaseURL:         cfg.Mail.BaseURL,
		APIKey:          cfg.Mail.APIKey,
		FromAddress:     cfg.Mail.FromAddress,
		DashboardURL:    cfg.Mail.DashboardURL,
		ResubmissionURL: cfg.Mail.ResubmissionURL,
	}
	var notifier domainrepos.Notifier = mail.NewMailer(mailCfg)
	if cfg.Mail.APIKey == "" {
		log.Println("⚠️ MAIL_API_KEY not set, emails will only be logged")
		notifier = mail.NewLogMailer()
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, merchantRepo, credentialRepo, notifier, jwtService)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo, userRepo)
	approvalUsecase := usecases.NewApprovalUsecase(merchantRepo, userRepo, waitlistRepo, credentialRepo, notifier)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore, cfg.Security.SessionTTL)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase)
	adminHandler := handlers.NewAdminHandler(approvalUsecase, merchantRepo, credentialRepo)
	waitlistHandler := handlers.NewWaitlistHandler(waitlistRepo)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reminderJob := jobs.NewPendingReviewReminderJob(merchantRepo, cfg.Jobs.ReminderInterval, cfg.Jobs.ReminderMaxAgeHours)
	go reminderJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		merchantHandler: merchantHandler,
		adminHandler:    adminHandler,
		waitlistHandler: waitlistHandler,
		authMiddleware:  authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		reminderJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 DealHub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
