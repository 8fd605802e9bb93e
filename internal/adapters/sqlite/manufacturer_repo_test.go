package sqlite_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/basecamp/internal/adapters/sqlite"
	"github.com/example/basecamp/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestManufacturerRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewManufacturerRepository(db, zerolog.Nop())
	ctx := context.Background()

	t.Run("hidden by default", func(t *testing.T) {
		created, err := repo.Create(ctx, models.ManufacturerCreate{Name: "Petzl"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if !created.Hidden {
			t.Error("Hidden = false, want hidden by default")
		}
	})

	t.Run("explicit visibility", func(t *testing.T) {
		created, err := repo.Create(ctx, models.ManufacturerCreate{
			Name:      "Black Diamond",
			ShortName: "BD",
			Hidden:    boolPtr(false),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.Hidden {
			t.Error("Hidden = true, want public")
		}
		if created.ShortName != "BD" {
			t.Errorf("ShortName = %q, want %q", created.ShortName, "BD")
		}
	})
}

func TestManufacturerRepository_GetByName(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewManufacturerRepository(db, zerolog.Nop())
	ctx := context.Background()

	seedManufacturer(t, db, "Ocun", true)

	got, err := repo.GetByName(ctx, "Ocun", nil)
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetByName = nil, want the manufacturer")
	}

	got, err = repo.GetByName(ctx, "Ocun", boolPtr(false))
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got != nil {
		t.Errorf("GetByName with hidden=false = %v, want nil", got)
	}

	got, err = repo.GetByName(ctx, "Nobody", nil)
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got != nil {
		t.Errorf("GetByName unknown = %v, want nil", got)
	}
}

func TestManufacturerRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewManufacturerRepository(db, zerolog.Nop())
	ctx := context.Background()

	userID := seedUser(t, db, "viewer@example.com")
	public := seedManufacturer(t, db, "aPublic", false)
	granted := seedManufacturer(t, db, "Granted", true)
	seedManufacturer(t, db, "Invisible", true)

	err := repo.SetAccess(ctx, models.ManufacturerAccess{
		ManufacturerID: granted,
		UserID:         userID,
		Role:           models.RoleEditor,
	})
	if err != nil {
		t.Fatalf("SetAccess failed: %v", err)
	}

	t.Run("user with no other filters sees public or granted", func(t *testing.T) {
		entries, total, err := repo.List(ctx, models.ManufacturerFilters{UserID: &userID})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 2 || len(entries) != 2 {
			t.Fatalf("got %d entries (total %d), want 2", len(entries), total)
		}
		// lower(name) ordering: aPublic before Granted
		if entries[0].Manufacturer.ID != public {
			t.Errorf("first = %s, want the public one", entries[0].Manufacturer.Name)
		}
		if entries[0].Role != nil {
			t.Errorf("public Role = %v, want nil", *entries[0].Role)
		}
		if entries[1].Role == nil || *entries[1].Role != models.RoleEditor {
			t.Errorf("granted Role = %v, want editor", entries[1].Role)
		}
	})

	t.Run("hidden=true with user requires a grant", func(t *testing.T) {
		entries, total, err := repo.List(ctx, models.ManufacturerFilters{UserID: &userID, Hidden: boolPtr(true)})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 1 || len(entries) != 1 || entries[0].Manufacturer.ID != granted {
			t.Errorf("got %v (total %d), want only the granted hidden one", entries, total)
		}
	})

	t.Run("role filter", func(t *testing.T) {
		_, total, err := repo.List(ctx, models.ManufacturerFilters{
			UserID:      &userID,
			AccessRoles: []models.AccessRole{models.RoleEditor, models.RoleOwner},
		})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 1 {
			t.Errorf("total = %d, want 1", total)
		}

		_, total, err = repo.List(ctx, models.ManufacturerFilters{
			UserID:      &userID,
			AccessRoles: []models.AccessRole{models.RoleOwner},
		})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 0 {
			t.Errorf("total = %d, want 0", total)
		}
	})

	t.Run("empty role set selects ungranted public", func(t *testing.T) {
		entries, total, err := repo.List(ctx, models.ManufacturerFilters{
			UserID:      &userID,
			AccessRoles: []models.AccessRole{},
		})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 1 || entries[0].Manufacturer.ID != public {
			t.Errorf("got %v (total %d), want only the ungranted public one", entries, total)
		}
	})

	t.Run("without user the role column stays null", func(t *testing.T) {
		entries, total, err := repo.List(ctx, models.ManufacturerFilters{Hidden: boolPtr(true)})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 2 {
			t.Errorf("total = %d, want 2 hidden", total)
		}
		for _, e := range entries {
			if e.Role != nil {
				t.Errorf("Role = %v, want nil without a user", *e.Role)
			}
		}
	})
}

func TestManufacturerRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewManufacturerRepository(db, zerolog.Nop())
	ctx := context.Background()

	id := seedManufacturer(t, db, "Edelrid", true)

	err := repo.Update(ctx, id, models.ManufacturerUpdate{
		Description: models.Set("German rope maker"),
		Hidden:      models.Set(false),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, _ := repo.GetByID(ctx, id)
	if got.Description != "German rope maker" || got.Hidden {
		t.Errorf("got %+v, want description set and public", got)
	}

	// Clearing hidden resets the default (hidden)
	if err := repo.Update(ctx, id, models.ManufacturerUpdate{Hidden: models.Clear[bool]()}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, _ = repo.GetByID(ctx, id)
	if !got.Hidden {
		t.Error("Hidden = false, want default true after clear")
	}

	// Empty update is a no-op, also on a missing ID
	if err := repo.Update(ctx, uuid.New(), models.ManufacturerUpdate{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestManufacturerRepository_Accesses(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewManufacturerRepository(db, zerolog.Nop())
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	friend := seedUser(t, db, "friend@example.com")
	id := seedManufacturer(t, db, "Scarpa", true)

	err := repo.SetAccesses(ctx, []models.ManufacturerAccess{
		{ManufacturerID: id, UserID: owner, Role: models.RoleOwner},
		{ManufacturerID: id, UserID: friend, Role: models.RoleShared},
	})
	if err != nil {
		t.Fatalf("SetAccesses failed: %v", err)
	}

	role, err := repo.GetAccess(ctx, id, owner)
	if err != nil {
		t.Fatalf("GetAccess failed: %v", err)
	}
	if role == nil || *role != models.RoleOwner {
		t.Errorf("role = %v, want owner", role)
	}

	// Re-granting overwrites instead of duplicating
	err = repo.SetAccess(ctx, models.ManufacturerAccess{ManufacturerID: id, UserID: friend, Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("SetAccess failed: %v", err)
	}
	accesses, err := repo.ListAccesses(ctx, id)
	if err != nil {
		t.Fatalf("ListAccesses failed: %v", err)
	}
	if len(accesses) != 2 {
		t.Fatalf("len(accesses) = %d, want 2", len(accesses))
	}
	role, _ = repo.GetAccess(ctx, id, friend)
	if role == nil || *role != models.RoleAdmin {
		t.Errorf("role = %v, want admin after upsert", role)
	}

	if err := repo.RemoveAccess(ctx, id, friend); err != nil {
		t.Fatalf("RemoveAccess failed: %v", err)
	}
	role, err = repo.GetAccess(ctx, id, friend)
	if err != nil {
		t.Fatalf("GetAccess failed: %v", err)
	}
	if role != nil {
		t.Errorf("role = %v, want nil after revoke", *role)
	}

	// Deleting the manufacturer cascades the remaining grants
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM manufacturer_accesses WHERE manufacturer_id = ?", id).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("grants = %d, want 0 after delete", count)
	}
}
