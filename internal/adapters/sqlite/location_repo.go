package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/secondary"
)

const locationColumns = "locations.id, locations.name, locations.abbreviation, locations.website, locations.location_type, locations.parent_id"

// LocationRepository implements secondary.LocationRepository with SQLite.
type LocationRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewLocationRepository creates a new SQLite location repository.
func NewLocationRepository(db *sql.DB, log zerolog.Logger) *LocationRepository {
	return &LocationRepository{db: db, log: log.With().Str("repo", "location").Logger()}
}

// Create persists a new location with its activity-type set. Empty
// abbreviation and website are stored as null.
func (r *LocationRepository) Create(ctx context.Context, create models.LocationCreate) (*models.Location, error) {
	if create.Name == "" {
		return nil, models.ErrEmptyField("name")
	}

	locationType := create.Type
	if locationType == "" {
		locationType = models.LocationOther
	}

	id := uuid.New()
	r.log.Debug().Stringer("id", id).Str("name", create.Name).Msg("create location")

	var parentID any
	if create.ParentID != nil {
		parentID = *create.ParentID
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO locations (id, name, abbreviation, website, location_type, parent_id) VALUES (?, ?, ?, ?, ?, ?)",
		id, create.Name, nullIfEmpty(create.Abbreviation), nullIfEmpty(create.Website), string(locationType), parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	if len(create.ActivityTypes) > 0 {
		err = replaceAssociations(ctx, tx, "location_activity_types", "location_id", "activity_type", id, typeValues(create.ActivityTypes))
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a location by its ID, nil when it does not exist.
func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+locationColumns+" FROM locations WHERE id = ?", id,
	)

	location, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	if err := loadLocationTypes(ctx, r.db, []*models.Location{location}); err != nil {
		return nil, err
	}
	return location, nil
}

// List retrieves the page of locations matching the filters and the
// total count over the same filters, in case-insensitive name order.
func (r *LocationRepository) List(ctx context.Context, filters models.LocationFilters) ([]*models.Location, int, error) {
	q := &query{
		table:    "locations",
		idColumn: "locations.id",
		columns:  locationColumns,
		orderBy:  "locations.name COLLATE NOCASE ASC",
		skip:     filters.Skip,
		limit:    filters.Limit,
	}

	types := make([]string, 0, len(filters.Types))
	for _, t := range filters.Types {
		types = append(types, string(t))
	}
	q.where(stringsIn("locations.location_type", types))
	q.where(idsInWithNull("locations.parent_id", filters.ParentIDs))

	var locations []*models.Location
	total, err := runPaged(ctx, r.db, q, func(rows *sql.Rows) error {
		location, err := scanLocation(rows)
		if err != nil {
			return err
		}
		locations = append(locations, location)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if err := loadLocationTypes(ctx, r.db, locations); err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

// Update applies a sparse update; updating a missing ID is a no-op.
func (r *LocationRepository) Update(ctx context.Context, id uuid.UUID, update models.LocationUpdate) error {
	cs := &changeSet{}
	if err := cs.resolveRequiredString("name", "name", update.Name); err != nil {
		return err
	}
	cs.resolveString("abbreviation", update.Abbreviation)
	cs.resolveString("website", update.Website)
	if v, ok := update.Type.Value(); ok {
		cs.set("location_type", string(v))
	} else if update.Type.IsClear() {
		// location_type is non-nullable; clearing resets the default.
		cs.set("location_type", string(models.LocationOther))
	}
	cs.resolveID("parent_id", update.ParentID)

	if cs.empty() && update.ActivityTypes == nil {
		r.log.Debug().Stringer("id", id).Msg("update location: nothing to do")
		return nil
	}
	r.log.Debug().Stringer("id", id).Msg("update location")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if update.ActivityTypes != nil {
		exists, err := rowExists(ctx, tx, "locations", id)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}
	}

	if err := cs.apply(ctx, tx, "locations", id); err != nil {
		return err
	}

	if update.ActivityTypes != nil {
		err = replaceAssociations(ctx, tx, "location_activity_types", "location_id", "activity_type", id, typeValues(update.ActivityTypes))
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a location; children keep existing with a nulled
// parent pointer. A missing ID is a no-op.
func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.log.Debug().Stringer("id", id).Msg("delete location")
	if _, err := r.db.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

// CreateFavorite marks a location as a favorite of a user. A duplicate
// pair fails with the store's constraint error.
func (r *LocationRepository) CreateFavorite(ctx context.Context, locationID, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO location_user_favorites (location_id, user_id) VALUES (?, ?)",
		locationID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to create location favorite: %w", err)
	}
	return nil
}

// HasFavorite reports whether the (location, user) favorite exists.
func (r *LocationRepository) HasFavorite(ctx context.Context, locationID, userID uuid.UUID) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM location_user_favorites WHERE location_id = ? AND user_id = ?",
		locationID, userID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get location favorite: %w", err)
	}
	return true, nil
}

// DeleteFavorite removes a favorite; a missing pair is a no-op.
func (r *LocationRepository) DeleteFavorite(ctx context.Context, locationID, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM location_user_favorites WHERE location_id = ? AND user_id = ?",
		locationID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete location favorite: %w", err)
	}
	return nil
}

// FavoritesByUser lists the locations a user has marked as favorites.
func (r *LocationRepository) FavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Location, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+locationColumns+` FROM locations
		 INNER JOIN location_user_favorites ON location_user_favorites.location_id = locations.id
		 WHERE location_user_favorites.user_id = ?
		 ORDER BY locations.name COLLATE NOCASE ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite locations: %w", err)
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := loadLocationTypes(ctx, r.db, locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// scanLocation reads one location row from either a Row or Rows scanner.
func scanLocation(row interface{ Scan(...any) error }) (*models.Location, error) {
	var (
		location models.Location
		abbrev   sql.NullString
		website  sql.NullString
		locType  string
		parentID uuid.NullUUID
	)

	err := row.Scan(&location.ID, &location.Name, &abbrev, &website, &locType, &parentID)
	if err != nil {
		return nil, err
	}

	location.Abbreviation = abbrev.String
	location.Website = website.String
	location.Type = models.LocationType(locType)
	if parentID.Valid {
		location.ParentID = &parentID.UUID
	}
	return &location, nil
}

// loadLocationTypes fills the activity-type sets of the given locations
// with one batched query.
func loadLocationTypes(ctx context.Context, conn *sql.DB, locations []*models.Location) error {
	if len(locations) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Location, len(locations))
	ids := make([]any, 0, len(locations))
	for _, l := range locations {
		byID[l.ID] = l
		ids = append(ids, l.ID)
	}

	rows, err := conn.QueryContext(ctx,
		"SELECT location_id, activity_type FROM location_activity_types WHERE location_id IN ("+placeholders(len(ids))+")",
		ids...,
	)
	if err != nil {
		return fmt.Errorf("failed to load location activity types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var t string
		if err := rows.Scan(&id, &t); err != nil {
			return fmt.Errorf("failed to scan location activity type: %w", err)
		}
		byID[id].ActivityTypes = append(byID[id].ActivityTypes, models.ActivityType(t))
	}
	return rows.Err()
}

// Ensure LocationRepository implements the interface.
var _ secondary.LocationRepository = (*LocationRepository)(nil)
