// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// users-api handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" field of JSON response bodies. Keeping them in one place
// ensures consistent wording throughout the API and its client.
package app

const (
	// MsgUnauthorized is returned when the Authorization header is missing
	// or does not carry the expected bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs, including a recovered panic. It never carries details.
	MsgInternalServerError = "Internal server error."

	// MsgUserNotFound is returned when no user has the requested id.
	MsgUserNotFound = "user not found"

	// MsgInvalidUserID is returned when the {id} path segment is not an
	// integer.
	MsgInvalidUserID = "invalid user id"

	// MsgInvalidJSON is returned when the request body cannot be decoded
	// into a user.
	MsgInvalidJSON = "invalid JSON body"
)
