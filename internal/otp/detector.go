package otp

import (
	"strings"

	"github.com/tirasundara/sms-alert-classifier/internal/keywords"
)

// Detect returns the one-time passcode carried by body, if any.
// Only the first qualifying 4-8 digit run is ever returned.
func Detect(body string) (string, bool) {
	lower := strings.ToLower(body)

	if !keywords.OTPTriggers.Contains(lower) {
		return "", false
	}

	// Statements and fund reports say "password" next to folio numbers and NAVs
	if keywords.OTPExclusions.Contains(lower) {
		return "", false
	}

	for _, loc := range keywords.OTPCandidatePattern.FindAllStringIndex(body, -1) {
		if isDateOrTimeFragment(body, loc[0], loc[1]) {
			continue
		}
		return body[loc[0]:loc[1]], true
	}

	return "", false
}

// isDateOrTimeFragment reports whether the digit run at [start, end) touches a
// date, time or phone separator on either side
func isDateOrTimeFragment(body string, start, end int) bool {
	if start > 0 && isSeparator(body[start-1]) {
		return true
	}
	if end < len(body) && isSeparator(body[end]) {
		return true
	}
	return false
}

func isSeparator(b byte) bool {
	return b == '-' || b == '/' || b == ':'
}
