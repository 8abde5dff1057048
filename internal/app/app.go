package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/fittrack"
	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/db"
	"github.com/templui/fittrack/internal/repository"
	"github.com/templui/fittrack/internal/seed"
	"github.com/templui/fittrack/internal/service"
	"github.com/templui/fittrack/internal/storage"
	"github.com/templui/fittrack/internal/validation"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Storage          storage.Storage
	ActivityService  *service.ActivityService
	GoalService      *service.GoalService
	DashboardService *service.DashboardService
	AIService        *service.AIService
	SettingsService  *service.SettingsService
	ExportService    *service.ExportService
	EmailService     *service.EmailService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	err := validation.ValidateEmail(cfg.OwnerEmail)
	if err != nil {
		return nil, fmt.Errorf("invalid OWNER_EMAIL: %w", err)
	}
	err = validation.ValidateName(cfg.OwnerName)
	if err != nil {
		return nil, fmt.Errorf("invalid OWNER_NAME: %w", err)
	}

	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	goalRepository := repository.NewGoalRepository(database)
	activityRepository := repository.NewActivityRepository(database)
	exportRepository := repository.NewExportRepository(database)

	if cfg.SeedDemoData {
		err = seed.Seed(ctx, goalRepository, activityRepository, time.Now())
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to seed demo data: %v", err)
		}
	}

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Markdown notes for generated plans and dashboard tips
	contentService := service.NewContentService(fittrack.ContentFS)
	err = contentService.Load()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load content: %v", err)
	}

	jobStore, err := service.NewJobStore(ctx, cfg.RedisURL, cfg.AIJobTTL)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize job store: %v", err)
	}
	if cfg.RedisURL != "" {
		slog.Info("generation jobs stored in redis")
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	activityService := service.NewActivityService(activityRepository)
	goalService := service.NewGoalService(goalRepository)
	dashboardService := service.NewDashboardService(activityService, goalService, contentService)
	aiService := service.NewAIService(jobStore, service.NewGenerator(contentService), cfg.AIGenerationDelay)
	exportService := service.NewExportService(
		exportRepository,
		activityRepository,
		goalRepository,
		fileStorage,
		emailService,
		cfg.AppURL,
		cfg.OwnerName,
		cfg.OwnerEmail,
	)
	settingsService := service.NewSettingsService(exportRepository, exportService)

	return &App{
		Cfg:              cfg,
		DB:               database,
		Storage:          fileStorage,
		ActivityService:  activityService,
		GoalService:      goalService,
		DashboardService: dashboardService,
		AIService:        aiService,
		SettingsService:  settingsService,
		ExportService:    exportService,
		EmailService:     emailService,
	}, nil
}

// Close waits for running exports and closes the database.
func (a *App) Close() error {
	if a.SettingsService != nil {
		a.SettingsService.Wait()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
