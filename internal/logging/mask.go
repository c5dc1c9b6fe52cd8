// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"regexp"
	"strings"
)

var (
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reInitData = regexp.MustCompile(`(?i)(initdata=)([^\s&;]+)`)
	reWebAuth  = regexp.MustCompile(`(?i)(start=webauth_)([a-f0-9]+)`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "*".
// It covers bearer tokens, Telegram init data, deep-link handshake states
// and API keys that may leak through wrapped error messages.
func Mask(s string) string {
	out := s
	out = reToken.ReplaceAllString(out, "$1***")
	out = reInitData.ReplaceAllString(out, "$1***")
	out = reWebAuth.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"WILI_TOKEN", "ACCESS_TOKEN", "CANCELLATION_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
