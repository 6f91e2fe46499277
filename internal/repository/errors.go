package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row for the given id and
// owner. Callers cannot distinguish "absent" from "owned by someone else".
var ErrNotFound = errors.New("record not found")
