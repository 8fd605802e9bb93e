package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
)

func TestLocationService_CreateLocation(t *testing.T) {
	svc := NewLocationService(newMockLocationRepo())
	ctx := context.Background()

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := svc.CreateLocation(ctx, models.LocationCreate{})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
		if verr.Field != "name" {
			t.Errorf("Field = %q, want name", verr.Field)
		}
	})

	t.Run("passes through a valid create", func(t *testing.T) {
		loc, err := svc.CreateLocation(ctx, models.LocationCreate{Name: "Hangar 18"})
		if err != nil {
			t.Fatalf("CreateLocation failed: %v", err)
		}
		if loc.Name != "Hangar 18" {
			t.Errorf("Name = %q, want Hangar 18", loc.Name)
		}
	})
}

func TestLocationService_FavoriteLocation(t *testing.T) {
	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()

	t.Run("creates a new favorite", func(t *testing.T) {
		repo := newMockLocationRepo()
		svc := NewLocationService(repo)

		if err := svc.FavoriteLocation(ctx, locationID, userID); err != nil {
			t.Fatalf("FavoriteLocation failed: %v", err)
		}
		if repo.createFavCalls != 1 {
			t.Errorf("createFavCalls = %d, want 1", repo.createFavCalls)
		}
	})

	t.Run("favoriting twice is a no-op", func(t *testing.T) {
		repo := newMockLocationRepo()
		svc := NewLocationService(repo)

		if err := svc.FavoriteLocation(ctx, locationID, userID); err != nil {
			t.Fatalf("first FavoriteLocation failed: %v", err)
		}
		if err := svc.FavoriteLocation(ctx, locationID, userID); err != nil {
			t.Fatalf("second FavoriteLocation failed: %v", err)
		}
		if repo.createFavCalls != 1 {
			t.Errorf("createFavCalls = %d, want 1", repo.createFavCalls)
		}
	})

	t.Run("existing favorite skips the insert", func(t *testing.T) {
		repo := newMockLocationRepo()
		already := true
		repo.hasFavoriteStub = &already
		svc := NewLocationService(repo)

		if err := svc.FavoriteLocation(ctx, locationID, userID); err != nil {
			t.Fatalf("FavoriteLocation failed: %v", err)
		}
		if repo.createFavCalls != 0 {
			t.Errorf("createFavCalls = %d, want 0", repo.createFavCalls)
		}
	})
}

func TestLocationService_UnfavoriteLocation(t *testing.T) {
	ctx := context.Background()
	repo := newMockLocationRepo()
	svc := NewLocationService(repo)
	locationID := uuid.New()
	userID := uuid.New()

	if err := svc.FavoriteLocation(ctx, locationID, userID); err != nil {
		t.Fatalf("FavoriteLocation failed: %v", err)
	}
	if err := svc.UnfavoriteLocation(ctx, locationID, userID); err != nil {
		t.Fatalf("UnfavoriteLocation failed: %v", err)
	}
	has, err := repo.HasFavorite(ctx, locationID, userID)
	if err != nil {
		t.Fatalf("HasFavorite failed: %v", err)
	}
	if has {
		t.Error("favorite survived the delete")
	}

	// A missing pair stays a no-op.
	if err := svc.UnfavoriteLocation(ctx, locationID, userID); err != nil {
		t.Fatalf("repeated UnfavoriteLocation failed: %v", err)
	}
}
