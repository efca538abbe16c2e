package models

import "errors"

// Custom errors
var (
	// ErrMissingData marks a required field (server identity, point scores,
	// serve percentages, set/game counts) as absent. Callers branch on the
	// sentinel, never on the diagnostic text.
	ErrMissingData = errors.New("missing data")

	// ErrInvalidDomain marks an input outside its valid domain, such as a
	// probability outside [0,1] or an unknown point score.
	ErrInvalidDomain = errors.New("value outside valid domain")
)
