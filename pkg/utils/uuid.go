package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para revisões do cronograma e registros de auditoria
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
