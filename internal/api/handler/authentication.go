package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login valida o par de credenciais contra o backend da farmácia e emite o
// token do BFF. O par nunca volta na resposta: fica selado na sessão.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Token:    token,
			Username: req.Username,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Usuário ou senha incorretos", nil)

	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}

// Logout encerra a sessão corrente. A operação é idempotente: repetir o
// logout de uma sessão já encerrada também responde sucesso.
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		removed, err := service.Invalidate(claims.SessionID)
		if err != nil {
			writeServiceError(w, r, service, err)
			return
		}

		if !removed {
			logrus.Debugf("Logout repetido para a sessão %s", claims.SessionID)
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna as informações da sessão corrente
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		session, _, err := service.ResolveSession(claims.SessionID)
		if err != nil {
			writeServiceError(w, r, service, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"username":  session.Username,
			"criadoEm":  session.CriadoEm,
			"ultimoUso": session.UltimoUso,
		})
	}
}
