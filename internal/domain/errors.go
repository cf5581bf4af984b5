package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced project, staff member,
	// roster or shift type does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCycleRejected is returned when a cost-sharing edge would close a
	// sharing cycle between projects.
	ErrCycleRejected = errors.New("cost sharing cycle rejected")

	// ErrInvalidPercentage is returned when a sharing percentage is outside (0,100].
	ErrInvalidPercentage = errors.New("invalid percentage")

	// ErrInvalidInput is returned for any other validation failure.
	ErrInvalidInput = errors.New("invalid input")
)
