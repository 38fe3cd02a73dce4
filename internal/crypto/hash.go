// Package crypto проверяет и хеширует пароли пользователей.
package crypto

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefix общий префикс bcrypt хешей ($2a$, $2b$, $2y$)
const bcryptPrefix = "$2"

// ErrPasswordMismatch пароль не совпадает с сохраненным значением
var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword возвращает bcrypt хеш пароля.
// cost вне [bcrypt.MinCost, bcrypt.MaxCost] заменяется на bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// IsHashed сообщает, похоже ли сохраненное значение на bcrypt хеш
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, bcryptPrefix)
}

// VerifyPassword сравнивает пароль с сохраненным значением.
// bcrypt хеш проверяется через bcrypt, любое другое значение
// считается открытым паролем и сравнивается за постоянное время.
func VerifyPassword(password, stored string) error {
	if stored == "" {
		return fmt.Errorf("stored password cannot be empty")
	}

	if IsHashed(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		if err != nil {
			return fmt.Errorf("failed to compare password hash: %w", err)
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}
