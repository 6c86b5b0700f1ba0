package review

import "errors"

// ErrInvalidInput is returned when a required field is missing or zero.
var ErrInvalidInput = errors.New("invalid input")

// CodeInvalidInput is the wire-level reason code for ErrInvalidInput.
const CodeInvalidInput = "invalid_input"

// failureCode maps a sentinel error to its wire-level reason code.
func failureCode(err error) string {
	if errors.Is(err, ErrInvalidInput) {
		return CodeInvalidInput
	}
	return ""
}
