package utils

import "strings"

// OnlyDigits remove tudo que não for dígito decimal.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCPF formata uma sequência de 11 dígitos como NNN.NNN.NNN-NN. Entradas
// com outra quantidade de dígitos voltam inalteradas.
func MaskCPF(value string) string {
	numbers := OnlyDigits(value)
	if len(numbers) != 11 {
		return value
	}
	return numbers[0:3] + "." + numbers[3:6] + "." + numbers[6:9] + "-" + numbers[9:11]
}

// UnmaskCPF recupera a sequência de dígitos de um CPF mascarado ou parcial.
func UnmaskCPF(value string) string {
	return OnlyDigits(value)
}
