package oracle

import "errors"

var (
	// ErrInvalidPayload is returned when a payload carries none of the
	// recognized content fields. The cycle never starts.
	ErrInvalidPayload = errors.New("oracle: payload has no summary, hypothesis, or dataset field")

	// ErrInvalidConfig is returned at cycle start when an engine option
	// is outside its valid range.
	ErrInvalidConfig = errors.New("oracle: invalid engine config")

	// ErrNotRegistered is returned when a named oracle is not present
	// in the registry.
	ErrNotRegistered = errors.New("oracle: not registered")
)
