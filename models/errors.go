package models

import "errors"

// Domain errors
var (
	// ErrConflict means a concurrent update won the versioned write; the
	// whole read-modify-write must be re-run, nothing was applied.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrInvalidAction means the action kind is not one of
	// recycle/sell/donate/share.
	ErrInvalidAction = errors.New("invalid action kind")

	// ErrMissingScan means the scan payload lacks the object class or
	// environmental block required to score an action.
	ErrMissingScan = errors.New("missing scan fields")
)

// IsRetryable reports whether the caller should re-run the operation as-is.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict)
}
