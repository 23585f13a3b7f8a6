package shortener

import "time"

const (
	// DefaultValidityMinutes applies when a caller does not choose a validity.
	DefaultValidityMinutes = 30
	// MaxValidityMinutes keeps expiry computations inside time.Duration (100 years).
	MaxValidityMinutes = 100 * 365 * 24 * 60

	// UnknownReferrer is recorded when a click arrives without a Referer header.
	UnknownReferrer = "unknown"
	// UnknownLocation is recorded for every click; no geolocation is performed.
	UnknownLocation = "unknown"
)

// Code is the registry key of a short URL: the validated original URL
// followed by "/" and the caller-supplied suffix.
type Code string

// ShortURL represents a shortened URL entity. It is immutable once stored.
type ShortURL struct {
	Code        Code
	OriginalURL string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the record is past its expiration at now.
// Expiration is informational only; expired records stay resolvable.
func (s *ShortURL) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Click is one registered visit of a short URL.
type Click struct {
	Timestamp time.Time
	Referrer  string
	Location  string
}

// Statistics aggregates a short URL with its click history.
type Statistics struct {
	Code        Code
	OriginalURL string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Expired     bool
	TotalClicks int
	Clicks      []Click
}

// CreateParams are the inputs of Service.CreateShortURL.
type CreateParams struct {
	OriginalURL string
	Suffix      string
	// ValidityMinutes of zero means DefaultValidityMinutes.
	ValidityMinutes int
}
