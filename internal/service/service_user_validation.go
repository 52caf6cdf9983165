package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

// UserValidationService answers requests that cannot succeed before they
// reach the wrapped service. Ids below 1 are never assigned, so such users
// are reported as absent without consulting the store.
type UserValidationService struct {
	inner UserService
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if err := validateID(id); err != nil {
		return models.User{}, err
	}
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	if err := validateID(id); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateUser(ctx, id, user)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	return v.inner.DeleteUser(ctx, id)
}

func validateID(id int64) error {
	if id < 1 {
		return fmt.Errorf("user %d: %w", id, store.ErrUserNotFound)
	}
	return nil
}
