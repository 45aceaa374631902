// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"net/url"
	"strings"
)

// secretParams are query parameter names whose values are never logged.
var secretParams = map[string]struct{}{
	"api_key": {},
	"apikey":  {},
	"token":   {},
	"key":     {},
}

// MaskSecret masks a credential, keeping only the first and last 2 characters.
//
//	MaskSecret("8f2c1d9e") -> "8f...9e"
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "***"
	}
	return s[:2] + "..." + s[len(s)-2:]
}

// RedactURL returns rawURL with credential query parameters masked.
// An unparsable URL is replaced entirely.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "[unparsable url]"
	}
	if u.User != nil {
		u.User = url.User("REDACTED")
	}
	if u.RawQuery == "" {
		return u.String()
	}

	q := u.Query()
	changed := false
	for name, values := range q {
		if _, secret := secretParams[strings.ToLower(name)]; !secret {
			continue
		}
		for i := range values {
			values[i] = "REDACTED"
		}
		changed = true
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
