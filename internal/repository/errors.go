// Package repository provides thin persistence types over *sql.DB. Sentinel
// errors defined here let handlers translate store outcomes into HTTP
// statuses without inspecting driver-specific error strings themselves.
package repository

import "errors"

// ErrEmailExists is returned when an insert violates the unique constraint
// on users.email. Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
