// Package wire provides dependency injection for the basecamp
// application. It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/example/basecamp/internal/adapters/security"
	"github.com/example/basecamp/internal/adapters/sqlite"
	"github.com/example/basecamp/internal/app"
	"github.com/example/basecamp/internal/config"
	"github.com/example/basecamp/internal/db"
	"github.com/example/basecamp/internal/logging"
	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/primary"
)

var (
	cfg                 *config.Config
	logger              zerolog.Logger
	activityService     primary.ActivityService
	locationService     primary.LocationService
	manufacturerService primary.ManufacturerService
	transactionService  primary.TransactionService
	userService         primary.UserService
	once                sync.Once
)

// ActivityService returns the singleton ActivityService instance.
func ActivityService() primary.ActivityService {
	once.Do(initServices)
	return activityService
}

// LocationService returns the singleton LocationService instance.
func LocationService() primary.LocationService {
	once.Do(initServices)
	return locationService
}

// ManufacturerService returns the singleton ManufacturerService instance.
func ManufacturerService() primary.ManufacturerService {
	once.Do(initServices)
	return manufacturerService
}

// TransactionService returns the singleton TransactionService instance.
func TransactionService() primary.TransactionService {
	once.Do(initServices)
	return transactionService
}

// UserService returns the singleton UserService instance.
func UserService() primary.UserService {
	once.Do(initServices)
	return userService
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the application logger.
func Logger() zerolog.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	loaded, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
	logger = logging.Console(os.Stderr, cfg.LogLevel)

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}

	// Repository adapters (secondary ports) with the injected handle
	activityRepo := sqlite.NewActivityRepository(database, logger)
	locationRepo := sqlite.NewLocationRepository(database, logger)
	manufacturerRepo := sqlite.NewManufacturerRepository(database, logger)
	transactionRepo := sqlite.NewTransactionRepository(database, logger)
	userRepo := sqlite.NewUserRepository(database, logger)
	hasher := security.NewBcryptHasher()

	// Services (primary ports implementation)
	activityService = app.NewActivityService(activityRepo)
	locationService = app.NewLocationService(locationRepo)
	manufacturerService = app.NewManufacturerService(manufacturerRepo)
	transactionService = app.NewTransactionService(transactionRepo)
	userService = app.NewUserService(userRepo, hasher)
}

// SeedSuperuser creates the configured initial superuser when no account
// with that email exists yet. Without configured credentials it does
// nothing.
func SeedSuperuser(ctx context.Context) error {
	once.Do(initServices)
	if cfg.SuperuserEmail == "" || cfg.SuperuserPassword == "" {
		return nil
	}

	existing, err := userService.GetUserByEmail(ctx, cfg.SuperuserEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = userService.CreateUser(ctx, models.UserCreate{
		Email:       cfg.SuperuserEmail,
		Password:    cfg.SuperuserPassword,
		IsSuperuser: true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed superuser: %w", err)
	}
	logger.Info().Str("email", cfg.SuperuserEmail).Msg("seeded initial superuser")
	return nil
}
