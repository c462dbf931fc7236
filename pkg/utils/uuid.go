package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador usado como chave primária dos registros de
// eventos de campanha
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 21)
}
