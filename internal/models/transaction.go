package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCategory classifies a financial transaction.
type TransactionCategory string

const (
	CategoryGear       TransactionCategory = "gear"
	CategoryTravel     TransactionCategory = "travel"
	CategoryFood       TransactionCategory = "food"
	CategoryLodging    TransactionCategory = "lodging"
	CategoryFees       TransactionCategory = "fees"
	CategoryMembership TransactionCategory = "membership"
	CategoryOther      TransactionCategory = "other"
)

// Transaction is a single income or expense entry. Every field is
// optional; negative amounts are expenses. The activity, location and
// user pointers survive deletion of their target as nulls.
type Transaction struct {
	ID          uuid.UUID
	ActivityID  *uuid.UUID
	LocationID  *uuid.UUID
	UserID      *uuid.UUID
	Date        *time.Time
	Amount      *int64
	Category    *TransactionCategory
	Description string // empty when unset
	Note        string // empty when unset
}

// TransactionCreate holds the fields accepted on creation.
type TransactionCreate struct {
	ActivityID  *uuid.UUID
	LocationID  *uuid.UUID
	UserID      *uuid.UUID
	Date        *time.Time // naive values are assumed UTC
	Amount      *int64
	Category    *TransactionCategory
	Description string
	Note        string
}

// TransactionUpdate is a sparse update request for a transaction.
type TransactionUpdate struct {
	ActivityID  Field[uuid.UUID]
	LocationID  Field[uuid.UUID]
	UserID      Field[uuid.UUID]
	Date        Field[time.Time]
	Amount      Field[int64]
	Category    Field[TransactionCategory]
	Description Field[string]
	Note        Field[string]
}

// TransactionFilters select transactions for a listing. Empty collections
// skip their dimension.
type TransactionFilters struct {
	UserIDs     []uuid.UUID
	ActivityIDs []uuid.UUID
	Skip        int
	Limit       int // zero or negative means no page bound
}
