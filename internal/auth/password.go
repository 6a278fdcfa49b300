package auth

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword — argon2id в закодированном виде ($argon2id$v=19$m=...).
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword — сверка пароля с закодированным хэшем.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
