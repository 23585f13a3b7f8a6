package shortener

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// ValidateSuffix accepts non-empty suffixes made only of letters and digits.
func ValidateSuffix(suffix string) error {
	if suffix == "" {
		return fmt.Errorf("%w: suffix is empty", ErrInvalidSuffix)
	}

	for _, r := range suffix {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: %q", ErrInvalidSuffix, suffix)
		}
	}

	return nil
}

// ValidateURL checks that rawURL is an absolute http(s) URL with a host and
// returns it trimmed of surrounding whitespace. Path, query, escapes and
// fragment are kept as sent.
func ValidateURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}

	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return trimmed, nil
}

// BuildCode joins an original URL and a suffix into a registry key.
func BuildCode(originalURL, suffix string) Code {
	return Code(originalURL + "/" + suffix)
}

func resolveValidity(minutes int) (int, error) {
	switch {
	case minutes == 0:
		return DefaultValidityMinutes, nil
	case minutes < 0:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidValidity, minutes)
	case minutes > MaxValidityMinutes:
		return 0, fmt.Errorf("%w: at most %d", ErrInvalidValidity, MaxValidityMinutes)
	default:
		return minutes, nil
	}
}
