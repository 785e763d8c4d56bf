package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera identificadores curtos para sessões e rascunhos de venda.
// MustGenerate só falha com alfabeto ou tamanho inválidos, ambos constantes.
func GenerateID() string {
	return gonanoid.MustGenerate(characters, 21)
}
