package service

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// UserService exposes the CRUD operations over users to the transport layer.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// AppInfoService reports metadata about the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
