// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific error strings.
package repository

import "errors"

// ErrEmailExists is returned when registering with an email address that
// already has an account. Handlers should translate this into an HTTP 409
// response.
var ErrEmailExists = errors.New("email already exists")

// ErrProfileExists is returned when creating a profile for a user that
// already has one. The setup wizard runs once per user; handlers should
// translate this into an HTTP 409 response.
var ErrProfileExists = errors.New("profile already exists")
