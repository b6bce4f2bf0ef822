package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"terminal-link.backend/internal/config"
	"terminal-link.backend/internal/infrastructure/models"
	"terminal-link.backend/internal/infrastructure/repositories"
	"terminal-link.backend/internal/interfaces/http/handlers"
	"terminal-link.backend/internal/interfaces/http/middleware"
	"terminal-link.backend/internal/usecases"
	"terminal-link.backend/pkg/logger"
	"terminal-link.backend/pkg/redis"
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
		}), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis only backs the idempotency middleware; the stub must come up in
	// environments without it.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, idempotent replay disabled", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
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
		if err := db.AutoMigrate(
			&models.TerminalConfig{},
			&models.Sale{},
			&models.Deployment{},
			&models.Verification{},
		); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		// At most one open PENDING sale per pair; the sale upsert relies on
		// this index for its ON CONFLICT target.
		if err := db.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_sales_pending_pair ON sales (pair_key) WHERE status = 'PENDING'`,
		).Error; err != nil {
			return fmt.Errorf("failed to create pending sale index: %w", err)
		}
	}

	// Initialize repositories
	configRepo := repositories.NewTerminalConfigRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	deploymentRepo := repositories.NewDeploymentRepository(db)
	verificationRepo := repositories.NewVerificationRepository(db)

	// Initialize usecases
	configUsecase := usecases.NewConfigUsecase(configRepo)
	saleUsecase := usecases.NewSaleUsecase(saleRepo)
	deploymentUsecase := usecases.NewDeploymentUsecase(deploymentRepo)
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, cfg.OTP.Digits)

	// Initialize handlers
	configHandler := handlers.NewConfigHandler(configUsecase)
	saleHandler := handlers.NewSaleHandler(saleUsecase)
	deploymentHandler := handlers.NewDeploymentHandler(deploymentUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerHealthRoute(r)
	registerRoutes(r, routeDeps{
		configHandler:       configHandler,
		saleHandler:         saleHandler,
		deploymentHandler:   deploymentHandler,
		verificationHandler: verificationHandler,
	})

	log.Printf("🚀 Terminal-Link Backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
