package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"64,00", 64.00, true},
		{"216.00", 216.00, true},
		{"41,04", 41.04, true},
		{"1.234,56", 1234.56, true},
		{"1,234.56", 1234.56, true},
		{"1.234", 1234, true}, // three digits after the separator: grouping
		{"12,345", 12345, true},
		{"7", 7, true},
		{"3.5", 3.5, true},
		{"-5,25", -5.25, true},
		{"€99,95", 99.95, true},
		{"216,", 0, false}, // trailing separator
		{"", 0, false},
		{"..,", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := normalizeNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFirstNumberSkipsPercentages(t *testing.T) {
	v, ok := firstNumber("19,00% EUR 41,04")
	assert.True(t, ok)
	assert.Equal(t, 41.04, v)
}

func TestFirstNumberSkipsGluedDigits(t *testing.T) {
	v, ok := firstNumber("M8 bolts at 4.00 each")
	assert.True(t, ok)
	assert.Equal(t, 4.00, v)
}

func TestFirstNumberNoneFound(t *testing.T) {
	_, ok := firstNumber("no amounts here")
	assert.False(t, ok)
}
