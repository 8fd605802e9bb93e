// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives the persistent store and other external systems.
package secondary

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
)

// ActivityRepository defines the secondary port for activity persistence.
type ActivityRepository interface {
	// Create persists a new activity together with its type and
	// participant sets.
	Create(ctx context.Context, create models.ActivityCreate) (*models.Activity, error)

	// GetByID retrieves an activity by its ID. Returns (nil, nil) when it
	// does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error)

	// List retrieves the activities matching the given filters and the
	// total count over the same filters.
	List(ctx context.Context, filters models.ActivityFilters) ([]*models.Activity, int, error)

	// Update applies a sparse update. Updating a missing ID is a no-op.
	Update(ctx context.Context, id uuid.UUID, update models.ActivityUpdate) error

	// Delete removes an activity; deleting a missing ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// LocationsOfUsers lists the distinct locations the given users have
	// activities at, with the total count.
	LocationsOfUsers(ctx context.Context, userIDs []uuid.UUID, skip, limit int) ([]*models.Location, int, error)

	// TypesOfUsers lists the distinct activity types the given users have
	// activities with.
	TypesOfUsers(ctx context.Context, userIDs []uuid.UUID) ([]models.ActivityType, error)
}

// LocationRepository defines the secondary port for location persistence.
type LocationRepository interface {
	Create(ctx context.Context, create models.LocationCreate) (*models.Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	List(ctx context.Context, filters models.LocationFilters) ([]*models.Location, int, error)
	Update(ctx context.Context, id uuid.UUID, update models.LocationUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateFavorite marks a location as a favorite of a user. Fails on a
	// duplicate pair; the constraint error propagates unchanged.
	CreateFavorite(ctx context.Context, locationID, userID uuid.UUID) error

	// HasFavorite reports whether the (location, user) favorite exists.
	HasFavorite(ctx context.Context, locationID, userID uuid.UUID) (bool, error)

	// DeleteFavorite removes a favorite; a missing pair is a no-op.
	DeleteFavorite(ctx context.Context, locationID, userID uuid.UUID) error

	// FavoritesByUser lists the locations a user has marked as favorites.
	FavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Location, error)
}

// ManufacturerRepository defines the secondary port for manufacturer
// persistence and access grants.
type ManufacturerRepository interface {
	Create(ctx context.Context, create models.ManufacturerCreate) (*models.Manufacturer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Manufacturer, error)

	// GetByName retrieves a manufacturer by exact name. A non-nil hidden
	// narrows the match to hidden or public manufacturers.
	GetByName(ctx context.Context, name string, hidden *bool) (*models.Manufacturer, error)

	// List retrieves manufacturers with the requesting user's role, plus
	// the total count over the same filters.
	List(ctx context.Context, filters models.ManufacturerFilters) ([]models.ManufacturerWithRole, int, error)

	Update(ctx context.Context, id uuid.UUID, update models.ManufacturerUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SetAccess grants a role, overwriting any existing grant for the
	// (manufacturer, user) pair.
	SetAccess(ctx context.Context, access models.ManufacturerAccess) error

	// SetAccesses applies several grants inside one transaction.
	SetAccesses(ctx context.Context, accesses []models.ManufacturerAccess) error

	// GetAccess returns the role a user holds, or nil without error when
	// no grant exists.
	GetAccess(ctx context.Context, manufacturerID, userID uuid.UUID) (*models.AccessRole, error)

	// ListAccesses returns every grant for a manufacturer.
	ListAccesses(ctx context.Context, manufacturerID uuid.UUID) ([]models.ManufacturerAccess, error)

	// RemoveAccess deletes one grant; a missing pair is a no-op.
	RemoveAccess(ctx context.Context, manufacturerID, userID uuid.UUID) error

	// RemoveAllAccesses deletes every grant for a manufacturer.
	RemoveAllAccesses(ctx context.Context, manufacturerID uuid.UUID) error
}

// TransactionRepository defines the secondary port for transaction
// persistence.
type TransactionRepository interface {
	Create(ctx context.Context, create models.TransactionCreate) (*models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, filters models.TransactionFilters) ([]*models.Transaction, int, error)
	Update(ctx context.Context, id uuid.UUID, update models.TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error

	// TotalByActivity sums the amounts of an activity's transactions,
	// optionally restricted to the given users. Missing amounts count as
	// zero.
	TotalByActivity(ctx context.Context, activityID uuid.UUID, userIDs []uuid.UUID) (int64, error)
}

// UserRepository defines the secondary port for user persistence. Create
// and Update expect the password to be hashed already.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filters models.UserFilters) ([]*models.User, int, error)

	// Update applies a sparse update; HashedPassword carries the already
	// hashed replacement when the password changes.
	Update(ctx context.Context, id uuid.UUID, update UserRecordUpdate) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRecordUpdate is the storage-level form of a user update: the plain
// password of models.UserUpdate has been exchanged for its hash.
type UserRecordUpdate struct {
	Email          models.Field[string]
	HashedPassword models.Field[string]
	FullName       models.Field[string]
	IsActive       models.Field[bool]
	IsSuperuser    models.Field[bool]
}
