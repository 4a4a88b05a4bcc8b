package types

import (
	"net/url"
	"strings"
)

// IsValidURL checks if a string is an absolute http(s) URL with a host and no embedded credentials
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" && u.User == nil
}

// IsHTTPSURL checks if a string is a valid https URL
func IsHTTPSURL(s string) bool {
	return IsValidURL(s) && strings.HasPrefix(strings.TrimSpace(s), "https://")
}
