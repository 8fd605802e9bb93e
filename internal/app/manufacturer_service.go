package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/primary"
	"github.com/example/basecamp/internal/ports/secondary"
)

// ManufacturerServiceImpl implements the ManufacturerService interface.
type ManufacturerServiceImpl struct {
	manufacturerRepo secondary.ManufacturerRepository
}

// NewManufacturerService creates a new ManufacturerService with injected
// dependencies.
func NewManufacturerService(manufacturerRepo secondary.ManufacturerRepository) *ManufacturerServiceImpl {
	return &ManufacturerServiceImpl{
		manufacturerRepo: manufacturerRepo,
	}
}

// CreateManufacturer creates a new manufacturer, hidden by default.
func (s *ManufacturerServiceImpl) CreateManufacturer(ctx context.Context, create models.ManufacturerCreate) (*models.Manufacturer, error) {
	if create.Name == "" {
		return nil, models.ErrEmptyField("name")
	}
	return s.manufacturerRepo.Create(ctx, create)
}

// GetManufacturer retrieves a manufacturer by ID, nil when it does not
// exist.
func (s *ManufacturerServiceImpl) GetManufacturer(ctx context.Context, id uuid.UUID) (*models.Manufacturer, error) {
	return s.manufacturerRepo.GetByID(ctx, id)
}

// GetManufacturerByName retrieves a manufacturer by exact name; a
// non-nil hidden narrows the match.
func (s *ManufacturerServiceImpl) GetManufacturerByName(ctx context.Context, name string, hidden *bool) (*models.Manufacturer, error) {
	return s.manufacturerRepo.GetByName(ctx, name, hidden)
}

// ListManufacturers retrieves manufacturers scoped to what the filtering
// user may see, with that user's role per row.
func (s *ManufacturerServiceImpl) ListManufacturers(ctx context.Context, filters models.ManufacturerFilters) ([]models.ManufacturerWithRole, int, error) {
	return s.manufacturerRepo.List(ctx, filters)
}

// UpdateManufacturer applies a sparse update to a manufacturer.
func (s *ManufacturerServiceImpl) UpdateManufacturer(ctx context.Context, id uuid.UUID, update models.ManufacturerUpdate) error {
	return s.manufacturerRepo.Update(ctx, id, update)
}

// DeleteManufacturer removes a manufacturer and its grants.
func (s *ManufacturerServiceImpl) DeleteManufacturer(ctx context.Context, id uuid.UUID) error {
	return s.manufacturerRepo.Delete(ctx, id)
}

// GrantAccess grants a role, overwriting an existing grant for the pair.
func (s *ManufacturerServiceImpl) GrantAccess(ctx context.Context, access models.ManufacturerAccess) error {
	return s.manufacturerRepo.SetAccess(ctx, access)
}

// GrantAccesses applies several grants inside one transaction.
func (s *ManufacturerServiceImpl) GrantAccesses(ctx context.Context, accesses []models.ManufacturerAccess) error {
	return s.manufacturerRepo.SetAccesses(ctx, accesses)
}

// GetAccess returns the role a user holds, nil when no grant exists.
func (s *ManufacturerServiceImpl) GetAccess(ctx context.Context, manufacturerID, userID uuid.UUID) (*models.AccessRole, error) {
	return s.manufacturerRepo.GetAccess(ctx, manufacturerID, userID)
}

// ListAccesses returns every grant for a manufacturer.
func (s *ManufacturerServiceImpl) ListAccesses(ctx context.Context, manufacturerID uuid.UUID) ([]models.ManufacturerAccess, error) {
	return s.manufacturerRepo.ListAccesses(ctx, manufacturerID)
}

// RevokeAccess deletes one grant; a missing pair is a no-op.
func (s *ManufacturerServiceImpl) RevokeAccess(ctx context.Context, manufacturerID, userID uuid.UUID) error {
	return s.manufacturerRepo.RemoveAccess(ctx, manufacturerID, userID)
}

// RevokeAllAccesses deletes every grant for a manufacturer.
func (s *ManufacturerServiceImpl) RevokeAllAccesses(ctx context.Context, manufacturerID uuid.UUID) error {
	return s.manufacturerRepo.RemoveAllAccesses(ctx, manufacturerID)
}

// Ensure ManufacturerServiceImpl implements the interface.
var _ primary.ManufacturerService = (*ManufacturerServiceImpl)(nil)
