// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the users API.
//
// The primary abstraction is [UsersAdapter], which hides the REST protocol
// from the command-line client. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/users_adapter_mock.go -package=mock

// UsersAdapter defines communication with the users-api server.
// Every request carries the configured bearer token.
type UsersAdapter interface {
	// ListUsers returns all users in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the user with the given id or an error wrapping
	// [ErrNotFound].
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser creates a user from name and email and returns it with the
	// id assigned by the server. The id of user is ignored.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces name and email of the user with the given id.
	UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error)

	// DeleteUser removes the user with the given id.
	DeleteUser(ctx context.Context, id int64) error

	// Version returns the build version reported by the server.
	Version(ctx context.Context) (string, error)
}
