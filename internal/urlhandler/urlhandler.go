package urlhandler

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/aleister1102/phishscan/internal/models"
)

// CanonicalScheme is prepended to every address we hand to the backend.
const CanonicalScheme = "https://"

var prefixRegex = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)*`)

// StripPrefix removes an optional http(s) scheme and any leading "www." labels.
func StripPrefix(s string) string {
	return prefixRegex.ReplaceAllString(s, "")
}

// Canonicalize applies the prefix rule without validating the result: trim,
// strip scheme and "www.", lowercase the host, prepend https://.
func Canonicalize(raw string) string {
	rest := StripPrefix(strings.TrimSpace(raw))

	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	authority := rest[:end]
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		authority = authority[:at+1] + strings.ToLower(authority[at+1:])
	} else {
		authority = strings.ToLower(authority)
	}

	return CanonicalScheme + authority + rest[end:]
}

// Normalize turns free-form input into a NormalizedURL. It never panics and
// reports false for empty input, unparsable input, or a host without a dot.
// Normalize(string(u)) returns u for every u it produces.
func Normalize(raw string) (models.NormalizedURL, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}

	candidate := Canonicalize(raw)
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", false
	}
	if !strings.Contains(parsed.Hostname(), ".") {
		return "", false
	}

	return models.NormalizedURL(candidate), true
}

// IsValid reports whether raw normalizes.
func IsValid(raw string) bool {
	_, ok := Normalize(raw)
	return ok
}

// Host returns the hostname of a normalized address.
func Host(u models.NormalizedURL) string {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
