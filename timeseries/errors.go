package timeseries

import "errors"

// Sentinel errors returned by validation. Match them with errors.Is; callers
// may wrap them with additional context.
var (
	// ErrShapeMismatch indicates a column or timestamp axis whose length does
	// not match the shared index.
	ErrShapeMismatch = errors.New("timeseries: shape mismatch")

	// ErrUnnamedColumn indicates a frame column with an empty name.
	ErrUnnamedColumn = errors.New("timeseries: unnamed column")

	// ErrDuplicateColumn indicates two frame columns sharing a name.
	ErrDuplicateColumn = errors.New("timeseries: duplicate column")
)
