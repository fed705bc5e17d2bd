package core

import "errors"

// ErrInvalidConfiguration is returned when a field is requested with a
// non-positive height or width, or a negative mine count.
var ErrInvalidConfiguration = errors.New("minesweeper: invalid configuration")
