package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera identificadores curtos, usados como jti dos tokens de sessão
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// NewUUID gera os identificadores das linhas de anunciantes e cobranças
func NewUUID() string {
	return uuid.NewString()
}
