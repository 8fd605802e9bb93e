package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
)

// execer is the subset of *sql.DB and *sql.Tx the write helpers need, so
// they run unchanged inside or outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowExists reports whether table holds a row with the given ID. Updates
// that touch association sets check this inside their transaction first,
// so a missing owner stays a no-op instead of tripping the join table's
// foreign key.
func rowExists(ctx context.Context, tx *sql.Tx, table string, id uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = ?)", id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check %s row: %w", table, err)
	}
	return exists, nil
}

// changeSet accumulates the resolved column assignments of one sparse
// update. After resolution only two states remain per column: omitted, or
// assigned a value-or-null.
type changeSet struct {
	assigns []string
	args    []any
}

func (c *changeSet) set(column string, value any) {
	c.assigns = append(c.assigns, column+" = ?")
	c.args = append(c.args, value)
}

func (c *changeSet) setNull(column string) {
	c.assigns = append(c.assigns, column+" = NULL")
}

func (c *changeSet) empty() bool {
	return len(c.assigns) == 0
}

// apply runs the accumulated UPDATE for one row. Zero affected rows is
// not an error: updating a missing ID is a successful no-op. An empty
// change-set performs no statement at all.
func (c *changeSet) apply(ctx context.Context, ex execer, table string, id uuid.UUID) error {
	if c.empty() {
		return nil
	}

	query := "UPDATE " + table + " SET "
	for i, a := range c.assigns {
		if i > 0 {
			query += ", "
		}
		query += a
	}
	query += " WHERE id = ?"

	args := append(append([]any{}, c.args...), id)
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}

// resolveString resolves an optional string field. The empty string is
// the clearing sentinel: both Clear and Set("") write null.
func (c *changeSet) resolveString(column string, f models.Field[string]) {
	if v, ok := f.Value(); ok {
		if v == "" {
			c.setNull(column)
		} else {
			c.set(column, v)
		}
		return
	}
	if f.IsClear() {
		c.setNull(column)
	}
}

// resolveRequiredString resolves a non-nullable string field. The
// clearing sentinel is rejected instead of writing null.
func (c *changeSet) resolveRequiredString(column, field string, f models.Field[string]) error {
	if f.IsClear() {
		return models.ErrEmptyField(field)
	}
	if v, ok := f.Value(); ok {
		if v == "" {
			return models.ErrEmptyField(field)
		}
		c.set(column, v)
	}
	return nil
}

// resolveTime resolves an optional datetime field, normalizing the value
// to UTC before it enters the change-set.
func (c *changeSet) resolveTime(column string, f models.Field[time.Time]) {
	if v, ok := f.Value(); ok {
		c.set(column, v.UTC())
		return
	}
	if f.IsClear() {
		c.setNull(column)
	}
}

// resolveDuration resolves an optional duration field, stored as whole
// seconds.
func (c *changeSet) resolveDuration(column string, f models.Field[time.Duration]) {
	if v, ok := f.Value(); ok {
		c.set(column, int64(v/time.Second))
		return
	}
	if f.IsClear() {
		c.setNull(column)
	}
}

// resolveID resolves an optional reference field holding a bare ID.
func (c *changeSet) resolveID(column string, f models.Field[uuid.UUID]) {
	if v, ok := f.Value(); ok {
		c.set(column, v)
		return
	}
	if f.IsClear() {
		c.setNull(column)
	}
}

// resolveLocationRef resolves a reference that may name its target by ID
// or through a loaded record; both normalize to the identifier.
func (c *changeSet) resolveLocationRef(column string, f models.Field[models.LocationRef]) {
	if v, ok := f.Value(); ok {
		c.set(column, v.ResolveID())
		return
	}
	if f.IsClear() {
		c.setNull(column)
	}
}

// resolveBool resolves a boolean field. Boolean columns are
// non-nullable, so clearing writes the column's default instead.
func (c *changeSet) resolveBool(column string, f models.Field[bool], clearDefault bool) {
	if v, ok := f.Value(); ok {
		c.set(column, v)
		return
	}
	if f.IsClear() {
		c.set(column, clearDefault)
	}
}

// resolveInt64 resolves an optional integer field.
func (c *changeSet) resolveInt64(column string, f models.Field[int64]) {
	if v, ok := f.Value(); ok {
		c.set(column, v)
		return
	}
	if f.IsClear() {
		c.setNull(column)
	}
}

// nullIfEmpty maps the empty string to SQL NULL on insert paths, keeping
// create and update semantics for optional strings identical.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// utcOrNil normalizes an optional datetime to UTC for insert paths.
func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

// idOrNil maps an optional ID to SQL NULL on insert paths.
func idOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}
