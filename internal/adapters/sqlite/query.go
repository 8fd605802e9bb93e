package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// query assembles a paged SELECT and its matching COUNT over one set of
// predicates, so the page and the total are always computed against the
// identical filter.
type query struct {
	table    string
	idColumn string // qualified primary key, used for distinct counting
	columns  string
	joins    []string
	joinArgs []any
	preds    []*predicate
	distinct bool
	orderBy  string
	skip     int
	limit    int
}

// where adds a filter dimension; nil predicates (skipped dimensions) are
// ignored. Active dimensions combine with AND.
func (q *query) where(p *predicate) {
	if p != nil {
		q.preds = append(q.preds, p)
	}
}

// join adds a join clause; rows multiplied by a join are collapsed again
// when distinct is set.
func (q *query) join(clause string, args ...any) {
	q.joins = append(q.joins, clause)
	q.joinArgs = append(q.joinArgs, args...)
	q.distinct = true
}

func (q *query) fromSQL() (string, []any) {
	sb := &strings.Builder{}
	sb.WriteString(" FROM ")
	sb.WriteString(q.table)
	for _, j := range q.joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}

	args := append([]any(nil), q.joinArgs...)
	for i, p := range q.preds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(p.expr)
		args = append(args, p.args...)
	}
	return sb.String(), args
}

// selectSQL renders the paged data query.
func (q *query) selectSQL() (string, []any) {
	from, args := q.fromSQL()

	sb := &strings.Builder{}
	sb.WriteString("SELECT ")
	if q.distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(q.columns)
	sb.WriteString(from)
	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	// SQLite reads a negative limit as "no limit".
	limit := q.limit
	if limit <= 0 {
		limit = -1
	}
	sb.WriteString(" LIMIT ")
	sb.WriteString(strconv.Itoa(limit))
	sb.WriteString(" OFFSET ")
	sb.WriteString(strconv.Itoa(q.skip))
	return sb.String(), args
}

// countSQL renders the total count over the same predicates, ignoring
// pagination.
func (q *query) countSQL() (string, []any) {
	from, args := q.fromSQL()

	expr := "COUNT(*)"
	if q.distinct {
		expr = "COUNT(DISTINCT " + q.idColumn + ")"
	}
	return "SELECT " + expr + from, args
}

// runPaged executes the data query and the count inside one read
// transaction, handing each data row to scanRow. Sharing the transaction
// keeps page and total consistent under concurrent writes.
func runPaged(ctx context.Context, conn *sql.DB, q *query, scanRow func(*sql.Rows) error) (int, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin read transaction: %w", err)
	}
	defer tx.Rollback()

	querySQL, queryArgs := q.selectSQL()
	rows, err := tx.QueryContext(ctx, querySQL, queryArgs...)
	if err != nil {
		return 0, fmt.Errorf("failed to query %s: %w", q.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scanRow(rows); err != nil {
			return 0, fmt.Errorf("failed to scan %s row: %w", q.table, err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read %s rows: %w", q.table, err)
	}
	rows.Close()

	countQuery, countArgs := q.countSQL()
	var total int
	if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", q.table, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit read transaction: %w", err)
	}
	return total, nil
}
