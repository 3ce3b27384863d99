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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"masked-aadhaar.backend/internal/config"
	"masked-aadhaar.backend/internal/infrastructure/jobs"
	"masked-aadhaar.backend/internal/infrastructure/mail"
	"masked-aadhaar.backend/internal/infrastructure/render"
	"masked-aadhaar.backend/internal/infrastructure/repositories"
	"masked-aadhaar.backend/internal/interfaces/http/handlers"
	"masked-aadhaar.backend/internal/interfaces/http/middleware"
	"masked-aadhaar.backend/internal/usecases"
	"masked-aadhaar.backend/pkg/jwt"
	"masked-aadhaar.backend/pkg/logger"
	"masked-aadhaar.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		gormCfg := &gorm.Config{TranslateError: true}
		if cfg.Driver == "postgres" {
			return gorm.Open(postgres.New(postgres.Config{
				DSN:                  cfg.URL(),
				PreferSimpleProtocol: true,
			}), gormCfg)
		}
		return gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	}
	connectRedis    = redis.Connect
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

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database using GORM. TranslateError turns driver
	// duplicate-key failures into gorm.ErrDuplicatedKey, which the VID
	// conflict-retry relies on.
	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	// Migrate schema
	schemaManager := repositories.NewSchemaManager(db)
	if err := schemaManager.Migrate(context.Background()); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info(context.Background(), "Database ready", zap.String("driver", cfg.Database.Driver))

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	livenessRepo := repositories.NewLivenessRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize the session store when Redis is configured; logins work
	// without it, returning tokens only.
	var sessionStore *redis.SessionStore
	if cfg.Redis.URL != "" {
		client, err := connectRedis(cfg.Redis.URL, cfg.Redis.Password)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		sessionStore, err = newSessionStore(client, cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
		logger.Info(context.Background(), "Session store initialized")
	}

	// Initialize infrastructure services
	mailer := mail.NewMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	renderer := render.NewRenderer(render.Config{
		TemplatePath: cfg.Card.TemplatePath,
		FontPath:     cfg.Card.FontPath,
		OutputDir:    cfg.Card.OutputDir,
	})

	// Initialize usecases
	registrationUsecase := usecases.NewRegistrationUsecase(userRepo, otpRepo, uow, mailer, cfg.OTP.TTL)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	cardUsecase := usecases.NewCardUsecase(userRepo, renderer, mailer, cfg.Card.LogoPath)
	livenessUsecase := usecases.NewLivenessUsecase(livenessRepo, cfg.Liveness.ExpectedPhrase)
	adminUsecase := usecases.NewAdminUsecase(userRepo, otpRepo, schemaManager)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupJob := jobs.NewOTPCleanupJob(otpRepo, cfg.OTP.SweepInterval)
	go cleanupJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.NewPrometheusMiddleware().Instrument())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerRoutes(r, routeDeps{
		registrationHandler: handlers.NewRegistrationHandler(registrationUsecase),
		authHandler:         handlers.NewAuthHandler(authUsecase),
		cardHandler:         handlers.NewCardHandler(cardUsecase),
		livenessHandler:     handlers.NewLivenessHandler(livenessUsecase),
		adminHandler:        handlers.NewAdminHandler(adminUsecase),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		cleanupJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("Masked Aadhaar backend starting on port %s", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
