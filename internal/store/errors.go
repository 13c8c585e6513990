package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic form of the entity-specific errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrUpdateFailed is returned when an update operation fails, for example
	// because the entity does not exist.
	ErrUpdateFailed = errors.New("update failed")

	// ErrDeleteFailed is returned when a delete operation fails.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrAdministratorNotFound indicates the requested administrator does not
	// exist, or that no administrator matched a login credential pair.
	ErrAdministratorNotFound = fmt.Errorf("%w: administrator", ErrNotFound)

	// ErrVehicleNotFound indicates the requested vehicle does not exist.
	ErrVehicleNotFound = fmt.Errorf("%w: vehicle", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
