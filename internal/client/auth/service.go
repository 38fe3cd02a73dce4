package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/patinfly/internal/client/repository"
	"github.com/iudanet/patinfly/internal/crypto"
	"github.com/iudanet/patinfly/internal/models"
	"github.com/iudanet/patinfly/internal/validation"
)

var (
	// ErrUserNotFound пользователь с таким email не найден
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials неверный пароль
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type service struct {
	users  repository.UserRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewService создает сервис авторизации
func NewService(users repository.UserRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) CheckUserExists(ctx context.Context, email string) bool {
	user := s.users.GetUser(ctx, email)
	if user == nil {
		return false
	}
	return models.NormalizeEmail(user.Email) == models.NormalizeEmail(email)
}

func (s *service) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := validation.ValidateLogin(email, password); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	user := s.users.GetUser(ctx, email)
	if user == nil || models.NormalizeEmail(user.Email) != models.NormalizeEmail(email) {
		s.logger.Debug("login: user not found", slog.String("email", email))
		return nil, ErrUserNotFound
	}

	if err := crypto.VerifyPassword(password, user.HashedPassword); err != nil {
		if !errors.Is(err, crypto.ErrPasswordMismatch) {
			s.logger.Warn("login: stored password is unusable", slog.String("email", user.Email), slog.Any("error", err))
		}
		s.logger.Debug("login: wrong password", slog.String("email", user.Email))
		return nil, ErrInvalidCredentials
	}

	user.LastConnection = s.now().UTC().Format(time.RFC3339)
	if s.users.UpdateUser(ctx, user) == nil {
		// вход не должен падать из-за кэша
		s.logger.Warn("login: failed to persist last connection", slog.String("email", user.Email))
	}

	s.logger.Info("user logged in", slog.String("email", user.Email))
	return user, nil
}
