package indexmap

import "errors"

var (
	// ErrInvalidArgument indicates a negative start index or count was supplied.
	ErrInvalidArgument = errors.New("indexmap: invalid argument")

	// ErrOutOfRange indicates a Range lookup outside [0, count).
	ErrOutOfRange = errors.New("indexmap: index out of range")

	// ErrMappingNotFound indicates a Table lookup for a local index that was never added.
	ErrMappingNotFound = errors.New("indexmap: no mapping found")
)
