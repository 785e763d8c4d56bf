package authenticating

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

// deriveKey transforma a SECRET_KEY de tamanho livre na chave de 32 bytes
// exigida pelo XChaCha20-Poly1305.
func deriveKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return sum[:]
}

// sealCredentials cifra o par Basic antes de persistir. O nonce aleatório vai
// prefixado no blob, então o mesmo par selado duas vezes nunca gera o mesmo
// resultado.
func sealCredentials(secret string, creds domain.Credentials) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(deriveKey(secret))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inicializar o seal de credenciais")
	}

	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar credenciais")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "erro ao gerar nonce")
	}

	return aead.Seal(nonce, nonce, payload, nil), nil
}

// openCredentials decifra o blob persistido. Qualquer adulteração do blob ou
// troca da SECRET_KEY faz a abertura falhar.
func openCredentials(secret string, sealed []byte) (domain.Credentials, error) {
	var creds domain.Credentials

	aead, err := chacha20poly1305.NewX(deriveKey(secret))
	if err != nil {
		return creds, errors.Wrap(err, "erro ao inicializar o seal de credenciais")
	}

	if len(sealed) < aead.NonceSize() {
		return creds, errors.New("blob de credenciais truncado")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	payload, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return creds, errors.Wrap(err, "erro ao abrir credenciais seladas")
	}

	if err := json.Unmarshal(payload, &creds); err != nil {
		return creds, errors.Wrap(err, "erro ao desserializar credenciais")
	}

	return creds, nil
}
