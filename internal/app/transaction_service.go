package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/primary"
	"github.com/example/basecamp/internal/ports/secondary"
)

// TransactionServiceImpl implements the TransactionService interface.
type TransactionServiceImpl struct {
	transactionRepo secondary.TransactionRepository
}

// NewTransactionService creates a new TransactionService with injected
// dependencies.
func NewTransactionService(transactionRepo secondary.TransactionRepository) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
	}
}

// CreateTransaction creates a new transaction; every field is optional.
func (s *TransactionServiceImpl) CreateTransaction(ctx context.Context, create models.TransactionCreate) (*models.Transaction, error) {
	return s.transactionRepo.Create(ctx, create)
}

// GetTransaction retrieves a transaction by ID, nil when it does not
// exist.
func (s *TransactionServiceImpl) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

// ListTransactions retrieves transactions matching the filters, newest
// first, with the total count over the same filters.
func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]*models.Transaction, int, error) {
	return s.transactionRepo.List(ctx, filters)
}

// UpdateTransaction applies a sparse update to a transaction.
func (s *TransactionServiceImpl) UpdateTransaction(ctx context.Context, id uuid.UUID, update models.TransactionUpdate) error {
	return s.transactionRepo.Update(ctx, id, update)
}

// DeleteTransaction removes a transaction; a missing ID is a no-op.
func (s *TransactionServiceImpl) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.transactionRepo.Delete(ctx, id)
}

// ActivityTotal sums the amounts booked against an activity, optionally
// restricted to the given users.
func (s *TransactionServiceImpl) ActivityTotal(ctx context.Context, activityID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	return s.transactionRepo.TotalByActivity(ctx, activityID, userIDs)
}

// Ensure TransactionServiceImpl implements the interface.
var _ primary.TransactionService = (*TransactionServiceImpl)(nil)
