package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

type userService struct {
	userStore store.UserStore

	logger *logger.Logger
}

func NewUserService(userStore store.UserStore, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userStore.Get(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// CreateUser stores user under a server-assigned id; user.ID is discarded.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = 0

	created, err := s.userStore.Create(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	updated, err := s.userStore.Update(ctx, id, user)
	if err != nil {
		return models.User{}, fmt.Errorf("update user %d: %w", id, err)
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
