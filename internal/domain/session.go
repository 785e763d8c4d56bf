package domain

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials é o par Basic replicado para o backend da farmácia. Ele nunca
// volta para o navegador: fica selado na sessão e só é aberto para montar o
// cabeçalho Authorization de cada chamada ao backend.
type Credentials struct {
	Username string
	Password string
}

// Session é o registro persistido de uma sessão ativa do BFF.
type Session struct {
	ID                 string
	Username           string
	CredenciaisSeladas []byte
	CriadoEm           time.Time
	UltimoUso          time.Time
}

// Claims do token emitido pelo BFF para o navegador.
type Claims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

type credentialsContextKey struct{}

func ContextWithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsContextKey{}, creds)
}

// CredentialsFromContext retorna as credenciais da sessão corrente, se houver.
func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsContextKey{}).(Credentials)
	return creds, ok
}
