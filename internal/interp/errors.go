package interp

import (
	"errors"
	"fmt"
)

// Sentinel markers for the interpreter failure taxonomy. Handlers tag every
// failure with one of these so the dispatcher can decide how much detail
// reaches the user.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")
)

// Validationf builds a ErrValidation-tagged failure.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Validation tags an existing error, typically from argument parsing.
func Validation(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// NotFoundf builds a ErrNotFound-tagged failure.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf builds a ErrConflict-tagged failure.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// IsUserFacing reports whether an error carries a message safe to show
// verbatim. Anything else is logged and replaced with a generic message.
func IsUserFacing(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict)
}
