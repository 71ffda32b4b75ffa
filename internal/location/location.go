package location

import "errors"

var (
	ErrNotFound = errors.New("location not found")
	ErrInvalid  = errors.New("invalid location")
	ErrExists   = errors.New("location already exists")
)

// Location is static reference data for the towns projects are built in.
type Location struct {
	Name       string
	Population int
}
