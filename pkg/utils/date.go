package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// IdadeEm calcula a idade completa em anos na data de referência, descontando
// um ano quando o aniversário ainda não ocorreu.
func IdadeEm(nascimento, referencia time.Time) int {
	idade := referencia.Year() - nascimento.Year()
	aniversarioPendente := int(referencia.Month()) < int(nascimento.Month()) ||
		(referencia.Month() == nascimento.Month() && referencia.Day() < nascimento.Day())
	if aniversarioPendente {
		idade--
	}
	return idade
}
