package shortener

import "errors"

var (
	ErrInvalidSuffix   = errors.New("suffix must be alphanumeric")
	ErrInvalidURL      = errors.New("invalid url")
	ErrInvalidValidity = errors.New("validity must be a positive number of minutes")
	ErrNotFound        = errors.New("short url not found")
	ErrInternal        = errors.New("internal error")
)

// IsClientError reports whether err was caused by invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSuffix) ||
		errors.Is(err, ErrInvalidURL) ||
		errors.Is(err, ErrInvalidValidity)
}
