package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors form the failure contract of the booking engine.
// Every operation either applies all of its writes or returns one of
// these kinds with no state change. Callers classify with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidRange       = errors.New("pickup date must be before return date")
	ErrVehicleUnavailable = errors.New("vehicle is not available for the selected dates")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidState       = errors.New("invalid state")
	ErrStorage            = errors.New("storage failure")
)

// NotFoundf wraps ErrNotFound with the entity name and id.
func NotFoundf(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

// StorageErr wraps a low-level storage error so callers can match it
// with errors.Is(err, ErrStorage) while keeping the cause in the chain.
func StorageErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
