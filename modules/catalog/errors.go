package catalog

import "errors"

// Sentinel errors for catalog operations. Failures cross the service
// container as value codes (see failureCode); these sentinels are what the
// service layer itself reports.
var (
	// ErrInvalidInput is returned when a required field is missing or empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when the referenced product does not exist.
	ErrNotFound = errors.New("product not found")

	// ErrUnauthorized is returned when the caller fails the owner check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicateID is returned on an id collision at insert. IDs are
	// freshly generated, so this is practically unreachable.
	ErrDuplicateID = errors.New("duplicate id")
)

// Failure reason codes carried in responses across the service container.
const (
	CodeInvalidInput = "invalid_input"
	CodeNotFound     = "not_found"
	CodeUnauthorized = "unauthorized"
	CodeDuplicateID  = "duplicate_id"
)

// failureCode maps a sentinel error to its wire-level reason code.
// Unknown errors map to an empty code and are treated as internal.
func failureCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrDuplicateID):
		return CodeDuplicateID
	default:
		return ""
	}
}
