// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrHallLocked indicates that a protected seed hall cannot
// be edited or deleted, while ErrConflict signals that an operation
// cannot proceed due to existing dependent records (e.g. deleting a
// menu item that is still referenced by a combo).
package repository

import "errors"

// ErrHallNotFound is returned when a hall lookup fails.
var ErrHallNotFound = errors.New("hall not found")

// ErrHallLocked is returned when an edit or delete targets a hall
// whose locked flag is set. Handlers should translate this into an
// HTTP 409 response.
var ErrHallLocked = errors.New("hall is locked")

// ErrMenuItemNotFound is returned when a menu item lookup fails.
var ErrMenuItemNotFound = errors.New("menu item not found")

// ErrCustomerNotFound is returned when a customer lookup fails.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrConflict is returned when a delete or update cannot be
// performed because of conflicting state. Handlers should translate
// this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
