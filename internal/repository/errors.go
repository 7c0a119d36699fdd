package repository

import "errors"

// ErrNotFound is returned when a lookup by id (or a targeted update/delete)
// matches no document. Handlers map it to 404.
var ErrNotFound = errors.New("not found")
