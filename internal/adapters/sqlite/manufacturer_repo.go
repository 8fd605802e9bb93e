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

const manufacturerColumns = "manufacturers.id, manufacturers.name, manufacturers.short_name, manufacturers.description, manufacturers.website, manufacturers.hidden"

// ManufacturerRepository implements secondary.ManufacturerRepository
// with SQLite.
type ManufacturerRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewManufacturerRepository creates a new SQLite manufacturer repository.
func NewManufacturerRepository(db *sql.DB, log zerolog.Logger) *ManufacturerRepository {
	return &ManufacturerRepository{db: db, log: log.With().Str("repo", "manufacturer").Logger()}
}

// Create persists a new manufacturer. Hidden defaults to true.
func (r *ManufacturerRepository) Create(ctx context.Context, create models.ManufacturerCreate) (*models.Manufacturer, error) {
	if create.Name == "" {
		return nil, models.ErrEmptyField("name")
	}

	hidden := true
	if create.Hidden != nil {
		hidden = *create.Hidden
	}

	id := uuid.New()
	r.log.Debug().Stringer("id", id).Str("name", create.Name).Msg("create manufacturer")

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO manufacturers (id, name, short_name, description, website, hidden) VALUES (?, ?, ?, ?, ?, ?)",
		id, create.Name, nullIfEmpty(create.ShortName), nullIfEmpty(create.Description), nullIfEmpty(create.Website), hidden,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create manufacturer: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a manufacturer by its ID, nil when it does not
// exist.
func (r *ManufacturerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Manufacturer, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+manufacturerColumns+" FROM manufacturers WHERE id = ?", id,
	)
	m, err := scanManufacturer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get manufacturer: %w", err)
	}
	return m, nil
}

// GetByName retrieves a manufacturer by exact name; a non-nil hidden
// narrows the match.
func (r *ManufacturerRepository) GetByName(ctx context.Context, name string, hidden *bool) (*models.Manufacturer, error) {
	query := "SELECT " + manufacturerColumns + " FROM manufacturers WHERE name = ?"
	args := []any{name}
	if hidden != nil {
		query += " AND hidden = ?"
		args = append(args, *hidden)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	m, err := scanManufacturer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get manufacturer: %w", err)
	}
	return m, nil
}

// List retrieves manufacturers scoped to what the filtering user may
// see, with that user's role per row and the total count over the same
// filters.
//
// With a user and neither Hidden nor AccessRoles set, visibility and
// access combine with OR: a row matches if it is public or the user
// holds a grant. Every other combination ANDs its dimensions. Without a
// user the role filter has no effect and the role column is null.
func (r *ManufacturerRepository) List(ctx context.Context, filters models.ManufacturerFilters) ([]models.ManufacturerWithRole, int, error) {
	q := &query{
		table:    "manufacturers",
		idColumn: "manufacturers.id",
		columns:  manufacturerColumns + ", NULL",
		orderBy:  "LOWER(manufacturers.name) ASC",
		skip:     filters.Skip,
		limit:    filters.Limit,
	}

	if filters.UserID != nil {
		q.columns = manufacturerColumns + ", manufacturer_accesses.role"
		// The pair (manufacturer_id, user_id) is the access table's
		// primary key, so this join never multiplies rows.
		q.joins = append(q.joins,
			"LEFT JOIN manufacturer_accesses ON manufacturer_accesses.manufacturer_id = manufacturers.id AND manufacturer_accesses.user_id = ?")
		q.joinArgs = append(q.joinArgs, *filters.UserID)

		switch {
		case filters.Hidden == nil && filters.AccessRoles == nil:
			// The deliberate OR exception: public rows or granted rows.
			q.where(anyOf(
				eq("manufacturers.hidden", false),
				&predicate{expr: "manufacturer_accesses.user_id IS NOT NULL"},
			))
		case filters.AccessRoles == nil:
			q.where(eq("manufacturers.hidden", *filters.Hidden))
			if *filters.Hidden {
				// Hidden rows require a grant.
				q.where(&predicate{expr: "manufacturer_accesses.user_id IS NOT NULL"})
			}
		case len(filters.AccessRoles) == 0:
			// Explicitly empty roles: rows where the user holds no grant;
			// only public ones are visible then.
			q.where(isNull("manufacturer_accesses.role"))
			if filters.Hidden != nil {
				q.where(eq("manufacturers.hidden", *filters.Hidden))
			} else {
				q.where(eq("manufacturers.hidden", false))
			}
		default:
			roles := make([]string, 0, len(filters.AccessRoles))
			for _, role := range filters.AccessRoles {
				roles = append(roles, string(role))
			}
			q.where(stringsIn("manufacturer_accesses.role", roles))
			if filters.Hidden != nil {
				q.where(eq("manufacturers.hidden", *filters.Hidden))
			}
		}
	} else if filters.Hidden != nil {
		q.where(eq("manufacturers.hidden", *filters.Hidden))
	}

	var results []models.ManufacturerWithRole
	total, err := runPaged(ctx, r.db, q, func(rows *sql.Rows) error {
		var (
			m       models.Manufacturer
			short   sql.NullString
			desc    sql.NullString
			website sql.NullString
			role    sql.NullString
		)
		err := rows.Scan(&m.ID, &m.Name, &short, &desc, &website, &m.Hidden, &role)
		if err != nil {
			return err
		}
		m.ShortName = short.String
		m.Description = desc.String
		m.Website = website.String

		entry := models.ManufacturerWithRole{Manufacturer: &m}
		if role.Valid {
			r := models.AccessRole(role.String)
			entry.Role = &r
		}
		results = append(results, entry)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// Update applies a sparse update; updating a missing ID is a no-op.
func (r *ManufacturerRepository) Update(ctx context.Context, id uuid.UUID, update models.ManufacturerUpdate) error {
	cs := &changeSet{}
	if err := cs.resolveRequiredString("name", "name", update.Name); err != nil {
		return err
	}
	cs.resolveString("short_name", update.ShortName)
	cs.resolveString("description", update.Description)
	cs.resolveString("website", update.Website)
	cs.resolveBool("hidden", update.Hidden, true)

	if cs.empty() {
		r.log.Debug().Stringer("id", id).Msg("update manufacturer: nothing to do")
		return nil
	}
	r.log.Debug().Stringer("id", id).Msg("update manufacturer")

	return cs.apply(ctx, r.db, "manufacturers", id)
}

// Delete removes a manufacturer and, via cascade, its access grants. A
// missing ID is a no-op.
func (r *ManufacturerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.log.Debug().Stringer("id", id).Msg("delete manufacturer")
	if _, err := r.db.ExecContext(ctx, "DELETE FROM manufacturers WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete manufacturer: %w", err)
	}
	return nil
}

// SetAccess grants a role, overwriting an existing grant for the same
// (manufacturer, user) pair. Grants are additive, not replace-all:
// revoking is its own operation.
func (r *ManufacturerRepository) SetAccess(ctx context.Context, access models.ManufacturerAccess) error {
	return r.setAccess(ctx, r.db, access)
}

func (r *ManufacturerRepository) setAccess(ctx context.Context, ex execer, access models.ManufacturerAccess) error {
	role := access.Role
	if role == "" {
		role = models.RoleShared
	}

	_, err := ex.ExecContext(ctx,
		`INSERT INTO manufacturer_accesses (manufacturer_id, user_id, role) VALUES (?, ?, ?)
		 ON CONFLICT(manufacturer_id, user_id) DO UPDATE SET role = excluded.role`,
		access.ManufacturerID, access.UserID, string(role),
	)
	if err != nil {
		return fmt.Errorf("failed to set manufacturer access: %w", err)
	}
	return nil
}

// SetAccesses applies several grants inside one transaction.
func (r *ManufacturerRepository) SetAccesses(ctx context.Context, accesses []models.ManufacturerAccess) error {
	if len(accesses) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, access := range accesses {
		if err := r.setAccess(ctx, tx, access); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetAccess returns the role a user holds for a manufacturer, nil when
// no grant exists.
func (r *ManufacturerRepository) GetAccess(ctx context.Context, manufacturerID, userID uuid.UUID) (*models.AccessRole, error) {
	var role string
	err := r.db.QueryRowContext(ctx,
		"SELECT role FROM manufacturer_accesses WHERE manufacturer_id = ? AND user_id = ?",
		manufacturerID, userID,
	).Scan(&role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get manufacturer access: %w", err)
	}

	r2 := models.AccessRole(role)
	return &r2, nil
}

// ListAccesses returns every grant for a manufacturer.
func (r *ManufacturerRepository) ListAccesses(ctx context.Context, manufacturerID uuid.UUID) ([]models.ManufacturerAccess, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT manufacturer_id, user_id, role FROM manufacturer_accesses WHERE manufacturer_id = ?",
		manufacturerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list manufacturer accesses: %w", err)
	}
	defer rows.Close()

	var accesses []models.ManufacturerAccess
	for rows.Next() {
		var access models.ManufacturerAccess
		var role string
		if err := rows.Scan(&access.ManufacturerID, &access.UserID, &role); err != nil {
			return nil, fmt.Errorf("failed to scan manufacturer access: %w", err)
		}
		access.Role = models.AccessRole(role)
		accesses = append(accesses, access)
	}
	return accesses, rows.Err()
}

// RemoveAccess deletes one grant; a missing pair is a no-op.
func (r *ManufacturerRepository) RemoveAccess(ctx context.Context, manufacturerID, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM manufacturer_accesses WHERE manufacturer_id = ? AND user_id = ?",
		manufacturerID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove manufacturer access: %w", err)
	}
	return nil
}

// RemoveAllAccesses deletes every grant for a manufacturer.
func (r *ManufacturerRepository) RemoveAllAccesses(ctx context.Context, manufacturerID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM manufacturer_accesses WHERE manufacturer_id = ?",
		manufacturerID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove manufacturer accesses: %w", err)
	}
	return nil
}

// scanManufacturer reads one manufacturer row.
func scanManufacturer(row interface{ Scan(...any) error }) (*models.Manufacturer, error) {
	var (
		m       models.Manufacturer
		short   sql.NullString
		desc    sql.NullString
		website sql.NullString
	)

	err := row.Scan(&m.ID, &m.Name, &short, &desc, &website, &m.Hidden)
	if err != nil {
		return nil, err
	}

	m.ShortName = short.String
	m.Description = desc.String
	m.Website = website.String
	return &m, nil
}

// Ensure ManufacturerRepository implements the interface.
var _ secondary.ManufacturerRepository = (*ManufacturerRepository)(nil)
