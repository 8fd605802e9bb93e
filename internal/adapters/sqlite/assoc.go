package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// replaceAssociations makes the stored association rows for one owner
// exactly equal to values: delete everything, then bulk-insert the
// desired set. Runs inside the caller's transaction so a mid-sequence
// failure rolls back to the prior set. An empty values slice removes all
// associations; callers that want "leave untouched" must not call this
// at all.
//
// Replace-all over diffing is deliberate: association sets here are tens
// of rows and not concurrently rewritten in normal operation.
func replaceAssociations(ctx context.Context, ex execer, table, ownerColumn, valueColumn string, ownerID uuid.UUID, values []any) error {
	if _, err := ex.ExecContext(ctx,
		"DELETE FROM "+table+" WHERE "+ownerColumn+" = ?", ownerID,
	); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	// The join table's composite primary key forbids duplicate edges;
	// collapse repeated values instead of failing the whole update.
	values = dedupe(values)
	if len(values) == 0 {
		return nil
	}

	query := "INSERT INTO " + table + " (" + ownerColumn + ", " + valueColumn + ") VALUES "
	args := make([]any, 0, len(values)*2)
	for i, v := range values {
		if i > 0 {
			query += ", "
		}
		query += "(?, ?)"
		args = append(args, ownerID, v)
	}

	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert %s: %w", table, err)
	}
	return nil
}

// dedupe drops repeated values, keeping first-occurrence order.
func dedupe(values []any) []any {
	seen := make(map[any]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// typeValues converts a typed string slice into bind arguments.
func typeValues[T ~string](values []T) []any {
	args := make([]any, 0, len(values))
	for _, v := range values {
		args = append(args, string(v))
	}
	return args
}

// idValues converts an ID slice into bind arguments.
func idValues(ids []uuid.UUID) []any {
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}
