package geometry

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument rejects a degenerate or non-finite primitive at construction.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLogic is returned when an operation is asked of a well-formed but unsuitable state.
	ErrLogic = errors.New("logic error")
)
