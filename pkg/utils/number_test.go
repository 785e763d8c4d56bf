package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "Valor com centavos usa vírgula decimal",
			input:    19.75,
			expected: "R$ 19,75",
		},
		{
			name:     "Milhar ganha ponto separador",
			input:    1234.5,
			expected: "R$ 1.234,50",
		},
		{
			name:     "Zero formata com dois decimais",
			input:    0,
			expected: "R$ 0,00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCurrency(tc.input))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 16.50, RoundWithTwoDecimalPlace(5.50*3))
	assert.Equal(t, 0.30, RoundWithTwoDecimalPlace(0.1+0.2))
}
