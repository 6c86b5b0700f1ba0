package order

import "errors"

// Sentinel errors for order operations.
var (
	// ErrInvalidInput is returned when a required field is missing or zero.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when the referenced product does not exist.
	ErrNotFound = errors.New("product not found")
)

// Failure reason codes carried in responses across the service container.
const (
	CodeInvalidInput = "invalid_input"
	CodeNotFound     = "not_found"
)

// failureCode maps a sentinel error to its wire-level reason code.
func failureCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	default:
		return ""
	}
}
