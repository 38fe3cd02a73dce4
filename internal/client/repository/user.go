package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

//go:generate moq -out user_mock.go . UserRepository

// UserRepository доступ к пользователям с откатом кэш → фикстуры
type UserRepository interface {
	// CurrentUser первый пользователь фикстур
	CurrentUser(ctx context.Context) *models.User

	// GetUser ищет в кэше по точному email, затем в фикстурах по нормализованному.
	// Найденный в фикстурах пользователь сохраняется в кэш.
	GetUser(ctx context.Context, email string) *models.User

	SetUser(ctx context.Context, user *models.User) bool
	UpdateUser(ctx context.Context, user *models.User) *models.User

	// DeleteUser удаляет из кэша CurrentUser и возвращает его
	DeleteUser(ctx context.Context) *models.User
}

type userRepository struct {
	cache    storage.UserStorage
	fixtures UserFixtures
	logger   *slog.Logger
}

// NewUserRepository создает репозиторий пользователей
func NewUserRepository(cache storage.UserStorage, fixtures UserFixtures, logger *slog.Logger) UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &userRepository{
		cache:    cache,
		fixtures: fixtures,
		logger:   logger.With(slog.String("repository", "user")),
	}
}

func (r *userRepository) CurrentUser(_ context.Context) *models.User {
	return r.fixtures.First()
}

func (r *userRepository) GetUser(ctx context.Context, email string) *models.User {
	user, err := r.cache.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return user
	case errors.Is(err, storage.ErrUserNotFound):
	default:
		r.logger.Error("failed to read user from cache", slog.String("email", email), slog.Any("error", err))
	}

	if local := r.fixtures.GetByEmail(email); local != nil {
		r.logger.Debug("user found in fixtures, saving to cache", slog.String("email", local.Email))
		r.SetUser(ctx, local)
		return local
	}

	return nil
}

func (r *userRepository) SetUser(ctx context.Context, user *models.User) bool {
	if user == nil {
		return false
	}
	if err := r.cache.SaveUser(ctx, user); err != nil {
		r.logger.Error("failed to save user", slog.String("uuid", user.UUID.String()), slog.Any("error", err))
		return false
	}
	return true
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) *models.User {
	if !r.SetUser(ctx, user) {
		return nil
	}
	return user
}

func (r *userRepository) DeleteUser(ctx context.Context) *models.User {
	user := r.CurrentUser(ctx)
	if user == nil {
		return nil
	}

	err := r.cache.DeleteUser(ctx, user)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrUserNotFound):
		r.logger.Debug("current user was not cached", slog.String("uuid", user.UUID.String()))
	default:
		r.logger.Error("failed to delete user", slog.String("uuid", user.UUID.String()), slog.Any("error", err))
		return nil
	}
	return user
}
