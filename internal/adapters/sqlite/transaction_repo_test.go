package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/basecamp/internal/adapters/sqlite"
	"github.com/example/basecamp/internal/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestTransactionRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTransactionRepository(db, zerolog.Nop())
	ctx := context.Background()

	t.Run("every field optional", func(t *testing.T) {
		created, err := repo.Create(ctx, models.TransactionCreate{})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.Amount != nil || created.Date != nil || created.Category != nil {
			t.Errorf("got %+v, want all fields nil", created)
		}
	})

	t.Run("full round-trip", func(t *testing.T) {
		userID := seedUser(t, db, "payer@example.com")
		activityID := seedActivity(t, db, "Gear day")
		date := time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)
		category := models.CategoryGear

		created, err := repo.Create(ctx, models.TransactionCreate{
			ActivityID:  &activityID,
			UserID:      &userID,
			Date:        &date,
			Amount:      int64Ptr(-12999),
			Category:    &category,
			Description: "New rope",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Amount == nil || *got.Amount != -12999 {
			t.Errorf("Amount = %v, want -12999", got.Amount)
		}
		if got.Date == nil || !got.Date.Equal(date) {
			t.Errorf("Date = %v, want %v", got.Date, date)
		}
		if got.Category == nil || *got.Category != models.CategoryGear {
			t.Errorf("Category = %v, want gear", got.Category)
		}
		if got.ActivityID == nil || *got.ActivityID != activityID {
			t.Errorf("ActivityID = %v, want %v", got.ActivityID, activityID)
		}
		if got.Description != "New rope" {
			t.Errorf("Description = %q, want %q", got.Description, "New rope")
		}
	})
}

func TestTransactionRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTransactionRepository(db, zerolog.Nop())
	ctx := context.Background()

	category := models.CategoryTravel
	created, err := repo.Create(ctx, models.TransactionCreate{
		Amount:   int64Ptr(500),
		Category: &category,
		Note:     "keep me",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("set and clear independently", func(t *testing.T) {
		err := repo.Update(ctx, created.ID, models.TransactionUpdate{
			Amount:   models.Set(int64(750)),
			Category: models.Clear[models.TransactionCategory](),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		got, _ := repo.GetByID(ctx, created.ID)
		if got.Amount == nil || *got.Amount != 750 {
			t.Errorf("Amount = %v, want 750", got.Amount)
		}
		if got.Category != nil {
			t.Errorf("Category = %v, want cleared", *got.Category)
		}
		if got.Note != "keep me" {
			t.Errorf("Note = %q, want untouched", got.Note)
		}
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		if err := repo.Update(ctx, created.ID, models.TransactionUpdate{}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		if err := repo.Update(ctx, uuid.New(), models.TransactionUpdate{Note: models.Set("ghost")}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	})
}

func TestTransactionRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTransactionRepository(db, zerolog.Nop())
	ctx := context.Background()

	userID := seedUser(t, db, "spender@example.com")
	activityID := seedActivity(t, db, "Trip")

	for i := 0; i < 3; i++ {
		date := time.Date(2026, 8, 1+i, 12, 0, 0, 0, time.UTC)
		create := models.TransactionCreate{Date: &date, Amount: int64Ptr(int64(100 * (i + 1)))}
		if i < 2 {
			create.UserID = &userID
			create.ActivityID = &activityID
		}
		if _, err := repo.Create(ctx, create); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("newest first with total", func(t *testing.T) {
		transactions, total, err := repo.List(ctx, models.TransactionFilters{Limit: 2})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 3 || len(transactions) != 2 {
			t.Fatalf("got %d rows (total %d), want 2 of 3", len(transactions), total)
		}
		if !transactions[0].Date.After(*transactions[1].Date) {
			t.Errorf("not ordered newest first: %v then %v", transactions[0].Date, transactions[1].Date)
		}
	})

	t.Run("filter by user and activity", func(t *testing.T) {
		_, total, err := repo.List(ctx, models.TransactionFilters{
			UserIDs:     []uuid.UUID{userID},
			ActivityIDs: []uuid.UUID{activityID},
		})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
	})
}

func TestTransactionRepository_TotalByActivity(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTransactionRepository(db, zerolog.Nop())
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	activityID := seedActivity(t, db, "Shared trip")

	for _, tc := range []struct {
		user   uuid.UUID
		amount *int64
	}{
		{alice, int64Ptr(-300)},
		{bob, int64Ptr(-200)},
		{alice, nil}, // missing amount counts as zero
	} {
		user := tc.user
		if _, err := repo.Create(ctx, models.TransactionCreate{
			ActivityID: &activityID,
			UserID:     &user,
			Amount:     tc.amount,
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	total, err := repo.TotalByActivity(ctx, activityID, nil)
	if err != nil {
		t.Fatalf("TotalByActivity failed: %v", err)
	}
	if total != -500 {
		t.Errorf("total = %d, want -500", total)
	}

	total, err = repo.TotalByActivity(ctx, activityID, []uuid.UUID{bob})
	if err != nil {
		t.Fatalf("TotalByActivity failed: %v", err)
	}
	if total != -200 {
		t.Errorf("total = %d, want -200", total)
	}

	// No transactions at all still sums to zero
	total, err = repo.TotalByActivity(ctx, uuid.New(), nil)
	if err != nil {
		t.Fatalf("TotalByActivity failed: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}

func TestTransactionRepository_SoftReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTransactionRepository(db, zerolog.Nop())
	ctx := context.Background()

	activityID := seedActivity(t, db, "Fleeting")
	created, err := repo.Create(ctx, models.TransactionCreate{
		ActivityID: &activityID,
		Amount:     int64Ptr(100),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Deleting the activity nulls the pointer without losing the row
	if _, err := db.Exec("DELETE FROM activities WHERE id = ?", activityID); err != nil {
		t.Fatalf("delete activity failed: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("transaction deleted with activity")
	}
	if got.ActivityID != nil {
		t.Errorf("ActivityID = %v, want nil", got.ActivityID)
	}
}
