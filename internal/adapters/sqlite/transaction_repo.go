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

const transactionColumns = "transactions.id, transactions.activity_id, transactions.location_id, transactions.user_id, transactions.occurred_at, transactions.amount, transactions.category, transactions.description, transactions.note"

// TransactionRepository implements secondary.TransactionRepository with
// SQLite.
type TransactionRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewTransactionRepository creates a new SQLite transaction repository.
func NewTransactionRepository(db *sql.DB, log zerolog.Logger) *TransactionRepository {
	return &TransactionRepository{db: db, log: log.With().Str("repo", "transaction").Logger()}
}

// Create persists a new transaction. Every field is optional.
func (r *TransactionRepository) Create(ctx context.Context, create models.TransactionCreate) (*models.Transaction, error) {
	id := uuid.New()
	r.log.Debug().Stringer("id", id).Msg("create transaction")

	var category any
	if create.Category != nil {
		category = string(*create.Category)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, activity_id, location_id, user_id, occurred_at, amount, category, description, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, idOrNil(create.ActivityID), idOrNil(create.LocationID), idOrNil(create.UserID),
		utcOrNil(create.Date), create.Amount, category,
		nullIfEmpty(create.Description), nullIfEmpty(create.Note),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a transaction by its ID, nil when it does not exist.
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id,
	)
	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// List retrieves the transactions matching the filters, newest first,
// with the total count over the same filters.
func (r *TransactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]*models.Transaction, int, error) {
	q := &query{
		table:    "transactions",
		idColumn: "transactions.id",
		columns:  transactionColumns,
		orderBy:  "transactions.occurred_at DESC",
		skip:     filters.Skip,
		limit:    filters.Limit,
	}
	q.where(idsIn("transactions.user_id", filters.UserIDs))
	q.where(idsIn("transactions.activity_id", filters.ActivityIDs))

	var transactions []*models.Transaction
	total, err := runPaged(ctx, r.db, q, func(rows *sql.Rows) error {
		t, err := scanTransaction(rows)
		if err != nil {
			return err
		}
		transactions = append(transactions, t)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// Update applies a sparse update; every field may be set, cleared or
// left alone. Updating a missing ID is a no-op.
func (r *TransactionRepository) Update(ctx context.Context, id uuid.UUID, update models.TransactionUpdate) error {
	cs := &changeSet{}
	cs.resolveID("activity_id", update.ActivityID)
	cs.resolveID("location_id", update.LocationID)
	cs.resolveID("user_id", update.UserID)
	cs.resolveTime("occurred_at", update.Date)
	cs.resolveInt64("amount", update.Amount)
	if v, ok := update.Category.Value(); ok {
		cs.set("category", string(v))
	} else if update.Category.IsClear() {
		cs.setNull("category")
	}
	cs.resolveString("description", update.Description)
	cs.resolveString("note", update.Note)

	if cs.empty() {
		r.log.Debug().Stringer("id", id).Msg("update transaction: nothing to do")
		return nil
	}
	r.log.Debug().Stringer("id", id).Msg("update transaction")

	return cs.apply(ctx, r.db, "transactions", id)
}

// Delete removes a transaction; a missing ID is a no-op.
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.log.Debug().Stringer("id", id).Msg("delete transaction")
	if _, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// TotalByActivity sums the amounts booked against an activity,
// optionally restricted to the given users. Rows without an amount count
// as zero.
func (r *TransactionRepository) TotalByActivity(ctx context.Context, activityID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	query := "SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE activity_id = ?"
	args := []any{activityID}
	if len(userIDs) > 0 {
		query += " AND user_id IN (" + placeholders(len(userIDs)) + ")"
		for _, id := range userIDs {
			args = append(args, id)
		}
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to total transactions: %w", err)
	}
	return total, nil
}

// scanTransaction reads one transaction row.
func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	var (
		t          models.Transaction
		activityID uuid.NullUUID
		locationID uuid.NullUUID
		userID     uuid.NullUUID
		occurredAt sql.NullTime
		amount     sql.NullInt64
		category   sql.NullString
		desc       sql.NullString
		note       sql.NullString
	)

	err := row.Scan(&t.ID, &activityID, &locationID, &userID, &occurredAt, &amount, &category, &desc, &note)
	if err != nil {
		return nil, err
	}

	if activityID.Valid {
		t.ActivityID = &activityID.UUID
	}
	if locationID.Valid {
		t.LocationID = &locationID.UUID
	}
	if userID.Valid {
		t.UserID = &userID.UUID
	}
	if occurredAt.Valid {
		occurred := occurredAt.Time.UTC()
		t.Date = &occurred
	}
	if amount.Valid {
		t.Amount = &amount.Int64
	}
	if category.Valid {
		c := models.TransactionCategory(category.String)
		t.Category = &c
	}
	t.Description = desc.String
	t.Note = note.String
	return &t, nil
}

// Ensure TransactionRepository implements the interface.
var _ secondary.TransactionRepository = (*TransactionRepository)(nil)
