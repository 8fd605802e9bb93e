// Package app implements the primary ports: the application services
// sitting between the entrypoints and the persistence adapters.
package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/primary"
	"github.com/example/basecamp/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	activityRepo secondary.ActivityRepository
}

// NewActivityService creates a new ActivityService with injected
// dependencies.
func NewActivityService(activityRepo secondary.ActivityRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
	}
}

// CreateActivity creates a new activity with its type and participant
// sets.
func (s *ActivityServiceImpl) CreateActivity(ctx context.Context, create models.ActivityCreate) (*models.Activity, error) {
	if create.Title == "" {
		return nil, models.ErrEmptyField("title")
	}
	return s.activityRepo.Create(ctx, create)
}

// GetActivity retrieves an activity by ID, nil when it does not exist.
func (s *ActivityServiceImpl) GetActivity(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	return s.activityRepo.GetByID(ctx, id)
}

// ListActivities retrieves activities matching the filters together with
// the total count over the same filters.
func (s *ActivityServiceImpl) ListActivities(ctx context.Context, filters models.ActivityFilters) ([]*models.Activity, int, error) {
	return s.activityRepo.List(ctx, filters)
}

// UpdateActivity applies a sparse update to an activity.
func (s *ActivityServiceImpl) UpdateActivity(ctx context.Context, id uuid.UUID, update models.ActivityUpdate) error {
	return s.activityRepo.Update(ctx, id, update)
}

// DeleteActivity removes an activity; a missing ID is a no-op.
func (s *ActivityServiceImpl) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return s.activityRepo.Delete(ctx, id)
}

// ActivityLocations lists the distinct locations the given users have
// activities at.
func (s *ActivityServiceImpl) ActivityLocations(ctx context.Context, userIDs []uuid.UUID, skip, limit int) ([]*models.Location, int, error) {
	return s.activityRepo.LocationsOfUsers(ctx, userIDs, skip, limit)
}

// ActivityTypes lists the distinct types the given users' activities
// carry.
func (s *ActivityServiceImpl) ActivityTypes(ctx context.Context, userIDs []uuid.UUID) ([]models.ActivityType, error) {
	return s.activityRepo.TypesOfUsers(ctx, userIDs)
}

// Ensure ActivityServiceImpl implements the interface.
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
