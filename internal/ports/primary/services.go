// Package primary defines the primary ports (driving interfaces) of the
// application: the services the CLI and other entrypoints talk to.
package primary

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
)

// ActivityService manages activities.
type ActivityService interface {
	CreateActivity(ctx context.Context, create models.ActivityCreate) (*models.Activity, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*models.Activity, error)
	ListActivities(ctx context.Context, filters models.ActivityFilters) ([]*models.Activity, int, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, update models.ActivityUpdate) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	// ActivityLocations lists the distinct locations the given users have
	// activities at.
	ActivityLocations(ctx context.Context, userIDs []uuid.UUID, skip, limit int) ([]*models.Location, int, error)

	// ActivityTypes lists the distinct types the given users' activities
	// carry.
	ActivityTypes(ctx context.Context, userIDs []uuid.UUID) ([]models.ActivityType, error)
}

// LocationService manages locations and per-user favorites.
type LocationService interface {
	CreateLocation(ctx context.Context, create models.LocationCreate) (*models.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*models.Location, error)
	ListLocations(ctx context.Context, filters models.LocationFilters) ([]*models.Location, int, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, update models.LocationUpdate) error
	DeleteLocation(ctx context.Context, id uuid.UUID) error

	FavoriteLocation(ctx context.Context, locationID, userID uuid.UUID) error
	UnfavoriteLocation(ctx context.Context, locationID, userID uuid.UUID) error
	FavoriteLocations(ctx context.Context, userID uuid.UUID) ([]*models.Location, error)
}

// ManufacturerService manages manufacturers and their access grants.
type ManufacturerService interface {
	CreateManufacturer(ctx context.Context, create models.ManufacturerCreate) (*models.Manufacturer, error)
	GetManufacturer(ctx context.Context, id uuid.UUID) (*models.Manufacturer, error)
	GetManufacturerByName(ctx context.Context, name string, hidden *bool) (*models.Manufacturer, error)
	ListManufacturers(ctx context.Context, filters models.ManufacturerFilters) ([]models.ManufacturerWithRole, int, error)
	UpdateManufacturer(ctx context.Context, id uuid.UUID, update models.ManufacturerUpdate) error
	DeleteManufacturer(ctx context.Context, id uuid.UUID) error

	GrantAccess(ctx context.Context, access models.ManufacturerAccess) error
	GrantAccesses(ctx context.Context, accesses []models.ManufacturerAccess) error
	GetAccess(ctx context.Context, manufacturerID, userID uuid.UUID) (*models.AccessRole, error)
	ListAccesses(ctx context.Context, manufacturerID uuid.UUID) ([]models.ManufacturerAccess, error)
	RevokeAccess(ctx context.Context, manufacturerID, userID uuid.UUID) error
	RevokeAllAccesses(ctx context.Context, manufacturerID uuid.UUID) error
}

// TransactionService manages transactions.
type TransactionService interface {
	CreateTransaction(ctx context.Context, create models.TransactionCreate) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]*models.Transaction, int, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, update models.TransactionUpdate) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	ActivityTotal(ctx context.Context, activityID uuid.UUID, userIDs []uuid.UUID) (int64, error)
}

// UserService manages accounts. Passwords cross this boundary in plain
// text and are hashed before they reach the store.
type UserService interface {
	CreateUser(ctx context.Context, create models.UserCreate) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, filters models.UserFilters) ([]*models.User, int, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// Authenticate returns the user for valid credentials and nil for an
	// unknown email or a wrong password.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}
