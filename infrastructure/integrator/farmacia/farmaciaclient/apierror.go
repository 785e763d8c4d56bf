package farmaciaclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifica a falha de uma chamada ao backend da farmácia. A
// decodificação acontece uma única vez aqui, na borda HTTP; o restante do
// código decide por variante em vez de inspecionar status ad hoc.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUnauthorized
	KindValidation
	KindNotFound
	KindConflict
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// backendErrorBody espelha o shape de erro do backend:
// {timestamp, status, error, message, path, errors?, details?}
type backendErrorBody struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
	Details   string            `json:"details,omitempty"`
}

// APIError é o erro fechado devolvido por todas as chamadas do cliente.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// Fields carrega o mapa campo → mensagem de um 400 de validação.
	Fields map[string]string
	cause  error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("farmacia: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("farmacia: %s", e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// AsAPIError extrai o *APIError de uma cadeia de erros, quando presente.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized indica um 401 do backend (credenciais rejeitadas).
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindUnauthorized
}

func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindNotFound
}
