// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is logged by the auth stage when the
	// request has no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is logged by the auth stage when the
	// header is present but does not carry the expected bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidUserIDParam is returned when the {id} path segment is not a
	// base-10 integer.
	ErrInvalidUserIDParam = errors.New("invalid user id")

	// ErrInvalidJSON is returned when a request body cannot be decoded
	// into a user.
	ErrInvalidJSON = errors.New("invalid JSON body")
)
