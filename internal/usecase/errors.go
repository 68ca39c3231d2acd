package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrResolutionFailed      = errors.New("entity resolution failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
