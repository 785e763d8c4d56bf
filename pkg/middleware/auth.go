package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AuthMiddleware valida o token do BFF e resolve a sessão correspondente.
// As credenciais abertas da sessão entram no contexto da requisição: é de lá
// que o cliente da farmácia monta o cabeçalho Basic de cada chamada.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			// O SPA usa o path devolvido para voltar à tela pretendida
			// depois do login.
			details := map[string]any{"path": r.URL.Path}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization ausente", details)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", details)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", details)
				return
			}

			// Token válido mas sessão removida (logout ou 401 do backend)
			// resolve para sessão expirada, forçando novo login.
			_, creds, err := authService.ResolveSession(claims.SessionID)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrExpiredSession, "Sessão expirada ou encerrada", details)
				return
			}

			authService.TouchSession(claims.SessionID)

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			ctx = domain.ContextWithCredentials(ctx, creds)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
