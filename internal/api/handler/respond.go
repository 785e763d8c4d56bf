package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/selling"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/validating"
	"github.com/erickpaes/farmacia-manager-api/pkg/apiErrors"
	"github.com/erickpaes/farmacia-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Warn("Erro ao enviar resposta")
	}
}

// claimsFromRequest recupera as claims colocadas no contexto pelo middleware
// de autenticação.
func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

func paramInt64(r *http.Request, name string) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	return strconv.ParseInt(raw, 10, 64)
}

// writeServiceError converte qualquer erro vindo dos casos de uso na resposta
// padronizada do BFF. A ordem importa: validação antecipada, erros de
// autenticação, erros do rascunho e por fim as variantes do backend.
func writeServiceError(w http.ResponseWriter, r *http.Request, authenticator authenticating.Authenticator, err error) {
	var validationErr *validating.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados inválidos", validationErr.Fields)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, selling.ErrDraftNotFound), errors.Is(err, selling.ErrItemNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDraftNotFound, err.Error(), nil)
		return

	case errors.Is(err, selling.ErrDuplicateMedication):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateItem, err.Error(), nil)
		return

	case errors.Is(err, selling.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return

	case errors.Is(err, selling.ErrDraftNotReady):
		apiErrors.WriteError(w, apiErrors.ErrDraftNotReady, err.Error(), nil)
		return
	}

	if farmErr, ok := farmaciaclient.AsAPIError(err); ok {
		writeFarmaciaError(w, r, authenticator, farmErr)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

// writeFarmaciaError traduz a variante do cliente da farmácia para o código do
// BFF. Um 401 no meio da sessão significa que a senha mudou no backend: a
// sessão é encerrada na hora e o SPA é mandado de volta para o login.
func writeFarmaciaError(w http.ResponseWriter, r *http.Request, authenticator authenticating.Authenticator, farmErr *farmaciaclient.APIError) {
	switch farmErr.Kind {
	case farmaciaclient.KindUnauthorized:
		if claims, ok := claimsFromRequest(r); ok {
			if _, err := authenticator.Invalidate(claims.SessionID); err != nil {
				logrus.Warnf("Erro ao encerrar sessão %s após 401 do backend: %v", claims.SessionID, err)
			}
		}
		apiErrors.WriteError(w, apiErrors.ErrExpiredSession, "O backend rejeitou as credenciais da sessão. Faça login novamente.", nil)

	case farmaciaclient.KindValidation:
		apiErrors.WriteError(w, apiErrors.ErrBackendValidation, farmErr.Message, farmErr.Fields)

	case farmaciaclient.KindNotFound:
		apiErrors.WriteError(w, apiErrors.ErrBackendNotFound, farmErr.Message, nil)

	case farmaciaclient.KindConflict:
		// A mensagem do backend volta textualmente: é ela que explica a regra
		// de negócio violada (estoque insuficiente, categoria em uso etc.)
		apiErrors.WriteError(w, apiErrors.ErrBackendConflict, farmErr.Message, nil)

	case farmaciaclient.KindNetwork:
		apiErrors.WriteError(w, apiErrors.ErrCommunication, farmErr.Message, nil)

	default:
		logrus.WithField("status_code", farmErr.StatusCode).Error(farmErr)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro inesperado no backend da farmácia", nil)
	}
}
