package validating

// ValidationError carrega os problemas por campo apontados pela validação
// antecipada, prontos para virar o details da resposta de erro.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "dados inválidos"
}

// Check valida a struct e devolve um ValidationError quando há problemas.
func (v *Validator) Check(s any) error {
	problems := v.Validate(s)
	if len(problems) > 0 {
		return &ValidationError{Fields: problems}
	}
	return nil
}
