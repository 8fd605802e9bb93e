package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/primary"
	"github.com/example/basecamp/internal/ports/secondary"
)

// LocationServiceImpl implements the LocationService interface.
type LocationServiceImpl struct {
	locationRepo secondary.LocationRepository
}

// NewLocationService creates a new LocationService with injected
// dependencies.
func NewLocationService(locationRepo secondary.LocationRepository) *LocationServiceImpl {
	return &LocationServiceImpl{
		locationRepo: locationRepo,
	}
}

// CreateLocation creates a new location.
func (s *LocationServiceImpl) CreateLocation(ctx context.Context, create models.LocationCreate) (*models.Location, error) {
	if create.Name == "" {
		return nil, models.ErrEmptyField("name")
	}
	return s.locationRepo.Create(ctx, create)
}

// GetLocation retrieves a location by ID, nil when it does not exist.
func (s *LocationServiceImpl) GetLocation(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	return s.locationRepo.GetByID(ctx, id)
}

// ListLocations retrieves locations matching the filters together with
// the total count over the same filters.
func (s *LocationServiceImpl) ListLocations(ctx context.Context, filters models.LocationFilters) ([]*models.Location, int, error) {
	return s.locationRepo.List(ctx, filters)
}

// UpdateLocation applies a sparse update to a location.
func (s *LocationServiceImpl) UpdateLocation(ctx context.Context, id uuid.UUID, update models.LocationUpdate) error {
	return s.locationRepo.Update(ctx, id, update)
}

// DeleteLocation removes a location; a missing ID is a no-op.
func (s *LocationServiceImpl) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	return s.locationRepo.Delete(ctx, id)
}

// FavoriteLocation marks a location as a favorite of a user. Favoriting
// an already favorited location is a no-op.
func (s *LocationServiceImpl) FavoriteLocation(ctx context.Context, locationID, userID uuid.UUID) error {
	exists, err := s.locationRepo.HasFavorite(ctx, locationID, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.locationRepo.CreateFavorite(ctx, locationID, userID)
}

// UnfavoriteLocation removes a favorite; a missing pair is a no-op.
func (s *LocationServiceImpl) UnfavoriteLocation(ctx context.Context, locationID, userID uuid.UUID) error {
	return s.locationRepo.DeleteFavorite(ctx, locationID, userID)
}

// FavoriteLocations lists the locations a user has favorited.
func (s *LocationServiceImpl) FavoriteLocations(ctx context.Context, userID uuid.UUID) ([]*models.Location, error) {
	return s.locationRepo.FavoritesByUser(ctx, userID)
}

// Ensure LocationServiceImpl implements the interface.
var _ primary.LocationService = (*LocationServiceImpl)(nil)
