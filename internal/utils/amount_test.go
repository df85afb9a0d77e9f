package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{name: "plain number", raw: "120000", expected: 120000, ok: true},
		{name: "thousands separators", raw: "1,200,000", expected: 1200000, ok: true},
		{name: "decimal", raw: "99.5", expected: 99.5, ok: true},
		{name: "surrounding spaces", raw: "  5000 ", expected: 5000, ok: true},
		{name: "empty is zero", raw: "", expected: 0, ok: true},
		{name: "blank is zero", raw: "   ", expected: 0, ok: true},
		{name: "garbage degrades to zero", raw: "about fifty", expected: 0, ok: false},
		{name: "negative is rejected", raw: "-100", expected: 0, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, ok := ParseAmount(tc.raw)
			assert.Equal(t, tc.expected, amount)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestParseAmountOr(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		fallback float64
		expected float64
		ok       bool
	}{
		{name: "valid input wins", raw: "110000", fallback: 100000, expected: 110000, ok: true},
		{name: "empty takes fallback", raw: "", fallback: 100000, expected: 100000, ok: true},
		{name: "garbage takes fallback with warning", raw: "tbd", fallback: 100000, expected: 100000, ok: false},
		{name: "negative takes fallback with warning", raw: "-5", fallback: 100000, expected: 100000, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, ok := ParseAmountOr(tc.raw, tc.fallback)
			assert.Equal(t, tc.expected, amount)
			assert.Equal(t, tc.ok, ok)
		})
	}
}
