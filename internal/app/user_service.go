package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/primary"
	"github.com/example/basecamp/internal/ports/secondary"
)

// UserServiceImpl implements the UserService interface. It owns
// credential validation and hashing; plain text passwords never reach
// the repository.
type UserServiceImpl struct {
	userRepo secondary.UserRepository
	hasher   secondary.PasswordHasher
}

// NewUserService creates a new UserService with injected dependencies.
func NewUserService(userRepo secondary.UserRepository, hasher secondary.PasswordHasher) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// CreateUser creates a new account. IsActive defaults to true.
func (s *UserServiceImpl) CreateUser(ctx context.Context, create models.UserCreate) (*models.User, error) {
	if create.Email == "" {
		return nil, models.ErrEmptyField("email")
	}
	if err := validatePassword(create.Password); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(create.Password)
	if err != nil {
		return nil, err
	}

	isActive := true
	if create.IsActive != nil {
		isActive = *create.IsActive
	}

	user := &models.User{
		Email:          create.Email,
		HashedPassword: hashed,
		FullName:       create.FullName,
		IsActive:       isActive,
		IsSuperuser:    create.IsSuperuser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID, nil when it does not exist.
func (s *UserServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by email, nil when it does not exist.
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// ListUsers retrieves users ordered by email, with the total count.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filters models.UserFilters) ([]*models.User, int, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUser applies a sparse update. A new password is validated and
// hashed before it reaches the store; clearing the password is rejected.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) error {
	record := secondary.UserRecordUpdate{
		Email:       update.Email,
		FullName:    update.FullName,
		IsActive:    update.IsActive,
		IsSuperuser: update.IsSuperuser,
	}

	if password, ok := update.Password.Value(); ok {
		if err := validatePassword(password); err != nil {
			return err
		}
		hashed, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}
		record.HashedPassword = models.Set(hashed)
	} else if update.Password.IsClear() {
		return models.ErrEmptyField("password")
	}

	return s.userRepo.Update(ctx, id, record)
}

// DeleteUser removes a user; a missing ID is a no-op.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

// Authenticate returns the user for valid credentials and nil for an
// unknown email or a wrong password. The two failure modes are
// indistinguishable to the caller.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !s.hasher.Verify(password, user.HashedPassword) {
		return nil, nil
	}
	return user, nil
}

// validatePassword enforces the password length limits.
func validatePassword(password string) error {
	if len(password) < models.PasswordMinLength {
		return &models.ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at least %d characters", models.PasswordMinLength),
		}
	}
	if len(password) > models.PasswordMaxLength {
		return &models.ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at most %d characters", models.PasswordMaxLength),
		}
	}
	return nil
}

// Ensure UserServiceImpl implements the interface.
var _ primary.UserService = (*UserServiceImpl)(nil)
