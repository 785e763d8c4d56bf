package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor em reais no padrão pt-BR (R$ 1.234,56).
func FormatCurrency(value float64) string {
	return brPrinter.Sprintf("R$ %.2f", value)
}
