package fv

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected int64
	}{
		{
			name:     "whole amount",
			amount:   "100",
			expected: 10000000000,
		},
		{
			name:     "fractional amount",
			amount:   "12.5",
			expected: 1250000000,
		},
		{
			name:     "eight fractional digits",
			amount:   "0.00000001",
			expected: 1,
		},
		{
			name:     "sub-unit remainder truncates down",
			amount:   "0.000000019",
			expected: 1,
		},
		{
			name:     "truncation never rounds up",
			amount:   "0.999999999",
			expected: 99999999,
		},
		{
			name:     "zero",
			amount:   "0",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBaseUnits(tt.amount)
			be.NilErr(t, err)
			be.Equal(t, tt.expected, got)
		})
	}
}

func TestToBaseUnitsInvalid(t *testing.T) {
	for _, amount := range []string{"", "abc", "12.5.1"} {
		if _, err := ToBaseUnits(amount); err == nil {
			t.Errorf("ToBaseUnits(%q) expected error, got nil", amount)
		}
	}
}

func TestFromBaseUnits(t *testing.T) {
	tests := []struct {
		name      string
		baseUnits int64
		expected  string
	}{
		{
			name:      "whole amount",
			baseUnits: 10000000000,
			expected:  "100.00000000",
		},
		{
			name:      "fractional amount",
			baseUnits: 1250000000,
			expected:  "12.50000000",
		},
		{
			name:      "single base unit",
			baseUnits: 1,
			expected:  "0.00000001",
		},
		{
			name:      "zero",
			baseUnits: 0,
			expected:  "0.00000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, FromBaseUnits(tt.baseUnits))
		})
	}
}

// Round-tripping a decimal string with at most eight fractional
// digits recovers the same value, padded to eight digits.
func TestAmountRoundTrip(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "12.5", expected: "12.50000000"},
		{amount: "0.00000001", expected: "0.00000001"},
		{amount: "999.99999999", expected: "999.99999999"},
		{amount: "1000", expected: "1000.00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			baseUnits, err := ToBaseUnits(tt.amount)
			be.NilErr(t, err)
			be.Equal(t, tt.expected, FromBaseUnits(baseUnits))
		})
	}
}

func TestDisplayAmount(t *testing.T) {
	be.Equal(t, "12.50000000 FVT", DisplayAmount(1250000000))
}
