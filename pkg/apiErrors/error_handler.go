package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pelo BFF
const (
	// Erros de autenticação (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken          = "AUTH_002" // Token inválido
	ErrExpiredSession        = "AUTH_003" // Sessão expirada ou invalidada
	ErrInsufficientPrivilege = "AUTH_004" // Privilégios insuficientes

	// Erros de validação (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrDuplicateItem       = "VAL_004" // Item duplicado no rascunho de venda

	// Erros do rascunho de venda (VND_*)
	ErrDraftNotFound = "VND_001" // Rascunho (ou item) inexistente para a sessão
	ErrDraftNotReady = "VND_002" // Rascunho incompleto para submissão

	// Erros originados no backend da farmácia (FARM_*)
	ErrBackendValidation = "FARM_001" // Validação rejeitada pelo backend
	ErrBackendNotFound   = "FARM_002" // Recurso não encontrado no backend
	ErrBackendConflict   = "FARM_003" // Regra de negócio rejeitou a operação

	// Erros do servidor (SRV_*)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação com o backend
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredSession:        http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrDuplicateItem:         http.StatusBadRequest,
	ErrDraftNotFound:         http.StatusNotFound,
	ErrDraftNotReady:         http.StatusBadRequest,
	ErrBackendValidation:     http.StatusBadRequest,
	ErrBackendNotFound:       http.StatusNotFound,
	ErrBackendConflict:       http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
