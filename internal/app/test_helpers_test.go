package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/basecamp/internal/models"
	"github.com/example/basecamp/internal/ports/secondary"
)

// Ensure mocks implement their interfaces
var (
	_ secondary.UserRepository     = (*mockUserRepo)(nil)
	_ secondary.PasswordHasher     = (*mockHasher)(nil)
	_ secondary.LocationRepository = (*mockLocationRepo)(nil)
)

// mockUserRepo implements secondary.UserRepository in memory.
type mockUserRepo struct {
	users      map[uuid.UUID]*models.User
	lastUpdate *secondary.UserRecordUpdate
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context, filters models.UserFilters) ([]*models.User, int, error) {
	var users []*models.User
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, len(users), nil
}

func (m *mockUserRepo) Update(ctx context.Context, id uuid.UUID, update secondary.UserRecordUpdate) error {
	m.lastUpdate = &update
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

// mockHasher implements secondary.PasswordHasher with a reversible fake.
type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

// mockLocationRepo implements secondary.LocationRepository; only the
// favorite operations carry behavior.
type mockLocationRepo struct {
	favorites       map[[2]uuid.UUID]bool
	createFavCalls  int
	hasFavoriteStub *bool
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{favorites: make(map[[2]uuid.UUID]bool)}
}

func (m *mockLocationRepo) Create(ctx context.Context, create models.LocationCreate) (*models.Location, error) {
	return &models.Location{ID: uuid.New(), Name: create.Name}, nil
}

func (m *mockLocationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	return nil, nil
}

func (m *mockLocationRepo) List(ctx context.Context, filters models.LocationFilters) ([]*models.Location, int, error) {
	return nil, 0, nil
}

func (m *mockLocationRepo) Update(ctx context.Context, id uuid.UUID, update models.LocationUpdate) error {
	return nil
}

func (m *mockLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (m *mockLocationRepo) CreateFavorite(ctx context.Context, locationID, userID uuid.UUID) error {
	m.createFavCalls++
	m.favorites[[2]uuid.UUID{locationID, userID}] = true
	return nil
}

func (m *mockLocationRepo) HasFavorite(ctx context.Context, locationID, userID uuid.UUID) (bool, error) {
	if m.hasFavoriteStub != nil {
		return *m.hasFavoriteStub, nil
	}
	return m.favorites[[2]uuid.UUID{locationID, userID}], nil
}

func (m *mockLocationRepo) DeleteFavorite(ctx context.Context, locationID, userID uuid.UUID) error {
	delete(m.favorites, [2]uuid.UUID{locationID, userID})
	return nil
}

func (m *mockLocationRepo) FavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Location, error) {
	return nil, nil
}
