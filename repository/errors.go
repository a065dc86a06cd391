package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document, or when a delete
// or update touches no document.
var ErrNotFound = errors.New("document not found")
