// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It turns the positional arguments left after flag parsing into a single
// call on the users adapter and prints the result as JSON.
package client
