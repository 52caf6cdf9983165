package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// memoryUserStore is the in-memory implementation of [UserStore].
//
// A single mutex guards users and lastID. lastID is the highest id ever
// handed out or seeded; it never decreases, so ids are not reused after
// deletes.
type memoryUserStore struct {
	mu     sync.Mutex
	users  []models.User
	lastID int64

	logger *logger.Logger
}

// DefaultSeed returns the records every fresh process starts with.
func DefaultSeed() []models.User {
	return []models.User{
		{ID: 1, Name: "Alice", Email: "alice@techhive.com"},
		{ID: 2, Name: "Bob", Email: "bob@techhive.com"},
	}
}

// NewMemoryUserStore returns a [UserStore] holding a copy of seed.
// Seed records keep their ids; later creates continue after the largest one.
func NewMemoryUserStore(logger *logger.Logger, seed ...models.User) UserStore {
	s := &memoryUserStore{
		users:  slices.Clone(seed),
		logger: logger,
	}
	for _, u := range seed {
		s.lastID = max(s.lastID, u.ID)
	}

	logger.Debug().Int("seeded", len(seed)).Msg("creating in-memory user store")
	return s
}

func (s *memoryUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *memoryUserStore) Get(ctx context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}
	return s.users[i], nil
}

func (s *memoryUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	user.ID = s.lastID
	s.users = append(s.users, user)

	logger.FromContext(ctx).Debug().Int64("id", user.ID).Msg("user created")
	return user, nil
}

func (s *memoryUserStore) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}

	s.users[i].Name = user.Name
	s.users[i].Email = user.Email

	logger.FromContext(ctx).Debug().Int64("id", id).Msg("user updated")
	return s.users[i], nil
}

func (s *memoryUserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrUserNotFound
	}
	s.users = slices.Delete(s.users, i, i+1)

	logger.FromContext(ctx).Debug().Int64("id", id).Msg("user deleted")
	return nil
}

// indexOf returns the position of id in s.users or -1. Callers hold s.mu.
func (s *memoryUserStore) indexOf(id int64) int {
	return slices.IndexFunc(s.users, func(u models.User) bool {
		return u.ID == id
	})
}
