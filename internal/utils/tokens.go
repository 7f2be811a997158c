package utils

import (
	"crypto/rand"
	"encoding/hex"
)

func randomHex(nBytes int) (string, error) {
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func NewRefreshToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32 // 256 бит по умолчанию
	}
	return randomHex(nBytes)
}

// NewVisitorID — опаковый идентификатор анонимной сессии.
func NewVisitorID() (string, error) {
	return randomHex(16)
}

// NewSubmissionToken — токен идемпотентности заявки; обычно генерируется
// клиентом, это запасной вариант на случай его отсутствия.
func NewSubmissionToken() (string, error) {
	return randomHex(16)
}
