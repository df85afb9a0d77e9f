package utils

import (
	"strconv"
	"strings"
)

// ParseAmount parses a money field from user input. Sales staff type fares
// with thousands separators and sometimes leave fields blank, so parsing is
// lenient: separators are stripped, an empty string is 0, and anything
// unparsable degrades to 0 with ok=false so the caller can surface a
// warning instead of aborting the transition.
func ParseAmount(raw string) (amount float64, ok bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if s == "" {
		return 0, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseAmountOr parses like ParseAmount but substitutes the given fallback
// when the input is empty, keeping 0 only for genuinely unparsable values.
func ParseAmountOr(raw string, fallback float64) (amount float64, ok bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if s == "" {
		return fallback, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fallback, false
	}
	return v, true
}
