package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "CPF mascarado vira só dígitos",
			input:    "123.456.789-01",
			expected: "12345678901",
		},
		{
			name:     "Texto sem dígitos vira vazio",
			input:    "Maria Silva",
			expected: "",
		},
		{
			name:     "Dígitos misturados com letras",
			input:    "tel: (11) 98765-4321",
			expected: "11987654321",
		},
		{
			name:     "Entrada vazia",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, OnlyDigits(tc.input))
		})
	}
}

func TestMaskCPF(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Onze dígitos ganham a máscara",
			input:    "12345678901",
			expected: "123.456.789-01",
		},
		{
			name:     "CPF já mascarado é normalizado",
			input:    "123.456.789-01",
			expected: "123.456.789-01",
		},
		{
			name:     "Quantidade errada de dígitos volta inalterada",
			input:    "1234567",
			expected: "1234567",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskCPF(tc.input))
		})
	}
}

func TestUnmaskCPF(t *testing.T) {
	assert.Equal(t, "12345678901", UnmaskCPF("123.456.789-01"))
	assert.Equal(t, "12345678901", UnmaskCPF("12345678901"))
}
