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

const userColumns = "users.id, users.email, users.hashed_password, users.full_name, users.is_active, users.is_superuser"

// UserRepository implements secondary.UserRepository with SQLite. It
// stores what it is given; password hashing happens upstream.
type UserRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(db *sql.DB, log zerolog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log.With().Str("repo", "user").Logger()}
}

// Create persists a new user, assigning an ID when none is set. The
// unique email constraint propagates unchanged.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Email == "" {
		return models.ErrEmptyField("email")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.log.Debug().Stringer("id", user.ID).Str("email", user.Email).Msg("create user")

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, hashed_password, full_name, is_active, is_superuser) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.HashedPassword, nullIfEmpty(user.FullName), user.IsActive, user.IsSuperuser,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID, nil when it does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id,
	)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetByEmail retrieves a user by email, nil when it does not exist.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email,
	)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// List retrieves users ordered by email, with the total count.
func (r *UserRepository) List(ctx context.Context, filters models.UserFilters) ([]*models.User, int, error) {
	q := &query{
		table:    "users",
		idColumn: "users.id",
		columns:  userColumns,
		orderBy:  "users.email ASC",
		skip:     filters.Skip,
		limit:    filters.Limit,
	}

	var users []*models.User
	total, err := runPaged(ctx, r.db, q, func(rows *sql.Rows) error {
		u, err := scanUser(rows)
		if err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update applies a sparse update; updating a missing ID is a no-op.
// Email and the password hash cannot be cleared.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, update secondary.UserRecordUpdate) error {
	cs := &changeSet{}
	if err := cs.resolveRequiredString("email", "email", update.Email); err != nil {
		return err
	}
	if err := cs.resolveRequiredString("hashed_password", "password", update.HashedPassword); err != nil {
		return err
	}
	cs.resolveString("full_name", update.FullName)
	cs.resolveBool("is_active", update.IsActive, true)
	cs.resolveBool("is_superuser", update.IsSuperuser, false)

	if cs.empty() {
		r.log.Debug().Stringer("id", id).Msg("update user: nothing to do")
		return nil
	}
	r.log.Debug().Stringer("id", id).Msg("update user")

	return cs.apply(ctx, r.db, "users", id)
}

// Delete removes a user; a missing ID is a no-op. Activity and favorite
// memberships cascade; soft references in transactions go null.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.log.Debug().Stringer("id", id).Msg("delete user")
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// scanUser reads one user row.
func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var (
		u        models.User
		fullName sql.NullString
	)

	err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &fullName, &u.IsActive, &u.IsSuperuser)
	if err != nil {
		return nil, err
	}

	u.FullName = fullName.String
	return &u, nil
}

// Ensure UserRepository implements the interface.
var _ secondary.UserRepository = (*UserRepository)(nil)
