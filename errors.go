package solid

import "errors"

var (
	// ErrInvalidArgument reports a negative or NaN dimension, a wrong
	// argument count, or a malformed Kind.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownKind is returned by Registry.Build for unregistered names.
	ErrUnknownKind = errors.New("unknown shape kind")

	// ErrDuplicateKind is returned by Registry.Register when the name is taken.
	ErrDuplicateKind = errors.New("duplicate shape kind")
)
