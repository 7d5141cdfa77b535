package model

import "errors"

// Validation failures surfaced before a simulation run starts.
var (
	ErrInvalidSeries     = errors.New("invalid price series")
	ErrInvalidParameters = errors.New("invalid simulation parameters")
)
