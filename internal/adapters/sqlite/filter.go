// Package sqlite contains SQLite implementations of the repository ports.
package sqlite

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
)

// predicate is one boolean filter dimension with its bind arguments.
type predicate struct {
	expr string
	args []any
}

// inWithNull builds the null-aware membership predicate for one column:
//
//	no values, no null marker  -> nil (dimension skipped)
//	concrete values only       -> column IN (...)
//	values plus null marker    -> column IN (...) OR column IS NULL
//	null marker only           -> column IS NULL
//
// An empty collection deliberately means "no filter", never "match
// nothing".
func inWithNull(column string, concrete []any, withNull bool) *predicate {
	switch {
	case len(concrete) == 0 && !withNull:
		return nil
	case len(concrete) == 0:
		return &predicate{expr: column + " IS NULL"}
	case withNull:
		return &predicate{
			expr: "(" + column + " IN (" + placeholders(len(concrete)) + ") OR " + column + " IS NULL)",
			args: concrete,
		}
	default:
		return &predicate{
			expr: column + " IN (" + placeholders(len(concrete)) + ")",
			args: concrete,
		}
	}
}

// idsInWithNull splits a collection of nullable IDs into concrete values
// and the null marker, then builds the membership predicate.
func idsInWithNull(column string, ids []uuid.NullUUID) *predicate {
	var concrete []any
	withNull := false
	for _, id := range ids {
		if id.Valid {
			concrete = append(concrete, id.UUID)
		} else {
			withNull = true
		}
	}
	return inWithNull(column, concrete, withNull)
}

// stringsInWithNull is idsInWithNull for nullable string columns.
func stringsInWithNull(column string, values []sql.NullString) *predicate {
	var concrete []any
	withNull := false
	for _, v := range values {
		if v.Valid {
			concrete = append(concrete, v.String)
		} else {
			withNull = true
		}
	}
	return inWithNull(column, concrete, withNull)
}

// idsIn builds a plain membership predicate; nil when the collection is
// empty.
func idsIn(column string, ids []uuid.UUID) *predicate {
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return inWithNull(column, args, false)
}

// stringsIn is idsIn for string-valued columns.
func stringsIn(column string, values []string) *predicate {
	args := make([]any, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return inWithNull(column, args, false)
}

// eq builds a simple equality predicate.
func eq(column string, value any) *predicate {
	return &predicate{expr: column + " = ?", args: []any{value}}
}

// isNull builds a plain IS NULL predicate.
func isNull(column string) *predicate {
	return &predicate{expr: column + " IS NULL"}
}

// anyOf combines predicates with OR, skipping nils. Used for the one
// filter pair in the system that does not AND-combine (manufacturer
// visibility against access).
func anyOf(preds ...*predicate) *predicate {
	var exprs []string
	var args []any
	for _, p := range preds {
		if p == nil {
			continue
		}
		exprs = append(exprs, p.expr)
		args = append(args, p.args...)
	}
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return &predicate{expr: exprs[0], args: args}
	default:
		return &predicate{expr: "(" + strings.Join(exprs, " OR ") + ")", args: args}
	}
}

// placeholders returns n comma-separated bind markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}
