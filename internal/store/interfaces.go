package store

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_store_mock.go -package=mock

// UserStore is the exclusive owner of the users collection.
//
// Implementations must make every method atomic with respect to the others
// and must never hand out references into their internal state: returned
// values are copies.
type UserStore interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]models.User, error)

	// Get returns the user with the given id or [ErrUserNotFound].
	Get(ctx context.Context, id int64) (models.User, error)

	// Create assigns a fresh id to user, appends it and returns the stored
	// record. user.ID is ignored.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update replaces Name and Email of the user with the given id and
	// returns the updated record, or [ErrUserNotFound].
	Update(ctx context.Context, id int64, user models.User) (models.User, error)

	// Delete removes the user with the given id or returns [ErrUserNotFound].
	Delete(ctx context.Context, id int64) error
}
