package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/secondary"
)

const activityColumns = "activities.id, activities.title, activities.description, activities.start_at, activities.duration_secs, activities.location_id, activities.parent_id"

// ActivityRepository implements secondary.ActivityRepository with SQLite.
type ActivityRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewActivityRepository creates a new SQLite activity repository.
func NewActivityRepository(db *sql.DB, log zerolog.Logger) *ActivityRepository {
	return &ActivityRepository{db: db, log: log.With().Str("repo", "activity").Logger()}
}

// Create persists a new activity with its type and participant sets
// inside one transaction.
func (r *ActivityRepository) Create(ctx context.Context, create models.ActivityCreate) (*models.Activity, error) {
	if create.Title == "" {
		return nil, models.ErrEmptyField("title")
	}

	id := uuid.New()
	r.log.Debug().Stringer("id", id).Str("title", create.Title).Msg("create activity")

	var locationID any
	if create.Location != nil {
		locationID = create.Location.ResolveID()
	}
	var parentID any
	if create.ParentID != nil {
		parentID = *create.ParentID
	}
	var duration any
	if create.Duration != nil {
		duration = int64(*create.Duration / time.Second)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO activities (id, title, description, start_at, duration_secs, location_id, parent_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, create.Title, nullIfEmpty(create.Description), utcOrNil(create.Start), duration, locationID, parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	if len(create.Types) > 0 {
		err = replaceAssociations(ctx, tx, "activity_types", "activity_id", "activity_type", id, typeValues(create.Types))
		if err != nil {
			return nil, err
		}
	}
	if len(create.UserIDs) > 0 {
		err = replaceAssociations(ctx, tx, "activity_users", "activity_id", "user_id", id, idValues(create.UserIDs))
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves an activity by its ID, nil when it does not exist.
func (r *ActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+activityColumns+" FROM activities WHERE id = ?", id,
	)

	activity, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	if err := r.loadAssociations(ctx, []*models.Activity{activity}); err != nil {
		return nil, err
	}
	return activity, nil
}

// List retrieves the page of activities matching the filters and the
// total count over the same filters, most recent start first.
func (r *ActivityRepository) List(ctx context.Context, filters models.ActivityFilters) ([]*models.Activity, int, error) {
	q := &query{
		table:    "activities",
		idColumn: "activities.id",
		columns:  activityColumns,
		orderBy:  "activities.start_at DESC",
		skip:     filters.Skip,
		limit:    filters.Limit,
	}

	if len(filters.Types) > 0 {
		q.join("LEFT JOIN activity_types ON activity_types.activity_id = activities.id")
		q.where(stringsInWithNull("activity_types.activity_type", filters.Types))
	}
	if len(filters.UserIDs) > 0 {
		q.join("LEFT JOIN activity_users ON activity_users.activity_id = activities.id")
		q.where(idsIn("activity_users.user_id", filters.UserIDs))
	}
	q.where(idsInWithNull("activities.location_id", filters.LocationIDs))
	q.where(idsInWithNull("activities.parent_id", filters.ParentIDs))

	var activities []*models.Activity
	total, err := runPaged(ctx, r.db, q, func(rows *sql.Rows) error {
		activity, err := scanActivity(rows)
		if err != nil {
			return err
		}
		activities = append(activities, activity)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if err := r.loadAssociations(ctx, activities); err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

// Update applies a sparse update; updating a missing ID is a no-op. An
// update that resolves to no field changes and touches no association
// set performs zero writes.
func (r *ActivityRepository) Update(ctx context.Context, id uuid.UUID, update models.ActivityUpdate) error {
	cs := &changeSet{}
	if err := cs.resolveRequiredString("title", "title", update.Title); err != nil {
		return err
	}
	cs.resolveString("description", update.Description)
	cs.resolveTime("start_at", update.Start)
	cs.resolveDuration("duration_secs", update.Duration)
	cs.resolveLocationRef("location_id", update.Location)
	cs.resolveID("parent_id", update.ParentID)

	if cs.empty() && update.Types == nil && update.UserIDs == nil {
		r.log.Debug().Stringer("id", id).Msg("update activity: nothing to do")
		return nil
	}
	r.log.Debug().Stringer("id", id).Msg("update activity")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if update.Types != nil || update.UserIDs != nil {
		exists, err := rowExists(ctx, tx, "activities", id)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}
	}

	if err := cs.apply(ctx, tx, "activities", id); err != nil {
		return err
	}

	if update.Types != nil {
		err = replaceAssociations(ctx, tx, "activity_types", "activity_id", "activity_type", id, typeValues(update.Types))
		if err != nil {
			return err
		}
	}
	if update.UserIDs != nil {
		err = replaceAssociations(ctx, tx, "activity_users", "activity_id", "user_id", id, idValues(update.UserIDs))
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes an activity; the store cascades the association rows
// and nulls children's parent pointers. A missing ID is a no-op.
func (r *ActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.log.Debug().Stringer("id", id).Msg("delete activity")
	if _, err := r.db.ExecContext(ctx, "DELETE FROM activities WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// LocationsOfUsers lists the distinct locations the given users have
// activities at.
func (r *ActivityRepository) LocationsOfUsers(ctx context.Context, userIDs []uuid.UUID, skip, limit int) ([]*models.Location, int, error) {
	q := &query{
		table:    "locations",
		idColumn: "locations.id",
		columns:  locationColumns,
		orderBy:  "locations.name COLLATE NOCASE ASC",
		skip:     skip,
		limit:    limit,
	}
	q.join("LEFT JOIN activities ON activities.location_id = locations.id")
	q.join("LEFT JOIN activity_users ON activity_users.activity_id = activities.id")
	q.where(idsIn("activity_users.user_id", userIDs))

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

// TypesOfUsers lists the distinct activity types the given users have
// activities with.
func (r *ActivityRepository) TypesOfUsers(ctx context.Context, userIDs []uuid.UUID) ([]models.ActivityType, error) {
	p := idsIn("activity_users.user_id", userIDs)
	query := `
		SELECT DISTINCT activity_types.activity_type
		FROM activity_types
		INNER JOIN activity_users ON activity_users.activity_id = activity_types.activity_id`
	var args []any
	if p != nil {
		query += " WHERE " + p.expr
		args = p.args
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity types: %w", err)
	}
	defer rows.Close()

	var types []models.ActivityType
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan activity type: %w", err)
		}
		types = append(types, models.ActivityType(t))
	}
	return types, rows.Err()
}

// scanActivity reads one activity row from either a Row or Rows scanner.
func scanActivity(row interface{ Scan(...any) error }) (*models.Activity, error) {
	var (
		activity   models.Activity
		desc       sql.NullString
		start      sql.NullTime
		duration   sql.NullInt64
		locationID uuid.NullUUID
		parentID   uuid.NullUUID
	)

	err := row.Scan(&activity.ID, &activity.Title, &desc, &start, &duration, &locationID, &parentID)
	if err != nil {
		return nil, err
	}

	activity.Description = desc.String
	if start.Valid {
		t := start.Time.UTC()
		activity.Start = &t
	}
	if duration.Valid {
		d := time.Duration(duration.Int64) * time.Second
		activity.Duration = &d
	}
	if locationID.Valid {
		activity.LocationID = &locationID.UUID
	}
	if parentID.Valid {
		activity.ParentID = &parentID.UUID
	}
	return &activity, nil
}

// loadAssociations fills the type and participant sets of the given
// activities with two batched queries.
func (r *ActivityRepository) loadAssociations(ctx context.Context, activities []*models.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Activity, len(activities))
	ids := make([]any, 0, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}
	marks := placeholders(len(ids))

	rows, err := r.db.QueryContext(ctx,
		"SELECT activity_id, activity_type FROM activity_types WHERE activity_id IN ("+marks+")", ids...,
	)
	if err != nil {
		return fmt.Errorf("failed to load activity types: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		var t string
		if err := rows.Scan(&id, &t); err != nil {
			return fmt.Errorf("failed to scan activity type: %w", err)
		}
		byID[id].Types = append(byID[id].Types, models.ActivityType(t))
	}
	if err := rows.Err(); err != nil {
		return err
	}

	userRows, err := r.db.QueryContext(ctx,
		"SELECT activity_id, user_id FROM activity_users WHERE activity_id IN ("+marks+")", ids...,
	)
	if err != nil {
		return fmt.Errorf("failed to load activity users: %w", err)
	}
	defer userRows.Close()
	for userRows.Next() {
		var id, userID uuid.UUID
		if err := userRows.Scan(&id, &userID); err != nil {
			return fmt.Errorf("failed to scan activity user: %w", err)
		}
		byID[id].UserIDs = append(byID[id].UserIDs, userID)
	}
	return userRows.Err()
}

// Ensure ActivityRepository implements the interface.
var _ secondary.ActivityRepository = (*ActivityRepository)(nil)
