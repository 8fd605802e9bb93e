package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
)

func TestUserService_CreateUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, mockHasher{})
	ctx := context.Background()

	t.Run("hashes the password", func(t *testing.T) {
		user, err := svc.CreateUser(ctx, models.UserCreate{
			Email:    "alice@example.com",
			Password: "longenoughpw",
		})
		if err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.HashedPassword != "hashed:longenoughpw" {
			t.Errorf("HashedPassword = %q, want the hash", user.HashedPassword)
		}
		if !user.IsActive {
			t.Error("IsActive = false, want default true")
		}
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, models.UserCreate{
			Email:    "short@example.com",
			Password: "tooshort",
		})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
		if verr.Field != "password" {
			t.Errorf("Field = %q, want password", verr.Field)
		}
	})

	t.Run("rejects overlong password", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, models.UserCreate{
			Email:    "long@example.com",
			Password: strings.Repeat("x", models.PasswordMaxLength+1),
		})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, models.UserCreate{Password: "longenoughpw"})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, mockHasher{})
	ctx := context.Background()
	id := uuid.New()

	t.Run("new password is hashed", func(t *testing.T) {
		err := svc.UpdateUser(ctx, id, models.UserUpdate{
			Password: models.Set("anotherlongpw"),
		})
		if err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}
		hashed, ok := repo.lastUpdate.HashedPassword.Value()
		if !ok || hashed != "hashed:anotherlongpw" {
			t.Errorf("HashedPassword = %q (%v), want the hash", hashed, ok)
		}
	})

	t.Run("untouched password stays untouched", func(t *testing.T) {
		err := svc.UpdateUser(ctx, id, models.UserUpdate{
			FullName: models.Set("New Name"),
		})
		if err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}
		if !repo.lastUpdate.HashedPassword.IsUnset() {
			t.Error("HashedPassword touched, want unset")
		}
	})

	t.Run("clearing the password is rejected", func(t *testing.T) {
		err := svc.UpdateUser(ctx, id, models.UserUpdate{
			Password: models.Clear[string](),
		})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})

	t.Run("short replacement is rejected", func(t *testing.T) {
		err := svc.UpdateUser(ctx, id, models.UserUpdate{
			Password: models.Set("nope"),
		})
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})
}

func TestUserService_Authenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, mockHasher{})
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, models.UserCreate{
		Email:    "auth@example.com",
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "auth@example.com", "correcthorse")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user == nil || user.ID != created.ID {
			t.Errorf("user = %v, want the created one", user)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "auth@example.com", "batterystaple")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user != nil {
			t.Errorf("user = %v, want nil", user)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "nobody@example.com", "correcthorse")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user != nil {
			t.Errorf("user = %v, want nil", user)
		}
	})
}
