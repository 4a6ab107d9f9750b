package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/planwise/assistant/internal/config"
	"github.com/planwise/assistant/internal/db"
	"github.com/planwise/assistant/internal/repository"
	"github.com/planwise/assistant/internal/service"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	UserService     *service.UserService
	SettingsService *service.SettingsService
	MealPlanService *service.MealPlanService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	settingsRepository := repository.NewSettingsRepository(database)
	mealPlanRepository := repository.NewMealPlanRepository(database)
	mealRepository := repository.NewMealRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.SecretKey, cfg.TokenExpiry)
	userService := service.NewUserService(userRepository)
	settingsService := service.NewSettingsService(settingsRepository)
	mealPlanService := service.NewMealPlanService(mealPlanRepository, mealRepository)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		UserService:     userService,
		SettingsService: settingsService,
		MealPlanService: mealPlanService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
