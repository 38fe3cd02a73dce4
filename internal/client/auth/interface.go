package auth

import (
	"context"

	"github.com/iudanet/patinfly/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service проверяет учетные данные пользователя.
// Вход локальный: пользователь ищется через UserRepository, сервер не участвует.
type Service interface {
	// CheckUserExists сообщает, найден ли пользователь с таким email
	// (сравнение нормализованных адресов)
	CheckUserExists(ctx context.Context, email string) bool

	// Login проверяет email и пароль.
	// При успехе обновляет LastConnection и возвращает пользователя.
	Login(ctx context.Context, email, password string) (*models.User, error)
}
