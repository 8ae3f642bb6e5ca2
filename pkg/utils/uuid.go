package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera um identificador curto e legível em URL, usado como chave
// pública de produtos
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
