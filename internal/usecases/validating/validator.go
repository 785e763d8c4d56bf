// Package validating concentra a validação antecipada dos formulários. Ela é
// consultiva: aponta os problemas antes da chamada sair, mas a palavra final
// sobre qualquer regra é sempre do backend da farmácia.
package validating

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate aplica as tags de validação da struct e devolve os problemas por
// campo, com mensagens prontas para exibição. Mapa vazio significa aprovado.
func (v *Validator) Validate(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	problems := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		problems[fieldErr.Field()] = messageFor(fieldErr)
	}

	return problems
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Campo obrigatório"
	case "min":
		if fieldErr.Kind().String() == "slice" {
			return fmt.Sprintf("Informe ao menos %s item(ns)", fieldErr.Param())
		}
		return fmt.Sprintf("Mínimo de %s caracteres", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Máximo de %s caracteres", fieldErr.Param())
	case "email":
		return "Email inválido"
	case "gt":
		return "Valor deve ser maior que " + fieldErr.Param()
	case "gte":
		return "Valor deve ser maior ou igual a " + fieldErr.Param()
	case "datetime":
		return "Data inválida, use o formato AAAA-MM-DD"
	default:
		return "Valor inválido"
	}
}
