package domain

import "errors"

var (
	ErrNilProduct        = errors.New("product is required")
	ErrInvalidName       = errors.New("name must be a non empty string")
	ErrInvalidPrice      = errors.New("price must be a finite non-negative number")
	ErrInvalidQuantity   = errors.New("quantity must be between 0 and 2147483647")
	ErrInsufficientStock = errors.New("not enough quantity in stock")
	ErrProductNotFound   = errors.New("product does not exist in the store")
	ErrDuplicateProduct  = errors.New("product already exists in the store")
	ErrProductInactive   = errors.New("product is not active")
)

// ValidationError is the only error class raised by the domain. Err carries
// the sentinel cause so callers can match it with errors.Is.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Reason != "" && e.Err != nil:
		return e.Reason + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Reason
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(cause error) error {
	return &ValidationError{Err: cause}
}

func invalidf(reason string, cause error) error {
	return &ValidationError{Reason: reason, Err: cause}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
