package redisdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

func (s *Storage) userKey(id string) string { return s.key("user:", id) }
func (s *Storage) usersKey() string        { return s.key("users") }
func (s *Storage) emailsKey() string       { return s.key("user_emails") }

// SaveUser stores or replaces a user and updates the email index.
// Email, занятый другим uuid, дает storage.ErrEmailTaken.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	id := user.UUID.String()
	key := s.userKey(id)

	return s.watchUser(ctx, key, func(tx *redis.Tx) error {
		owner, err := s.emailOwner(ctx, tx, user.Email)
		if err != nil {
			return err
		}
		if owner != "" && owner != id {
			return fmt.Errorf("%w: %s", storage.ErrEmailTaken, user.Email)
		}

		// Старый email нужен, чтобы убрать устаревшую запись индекса
		old, err := s.readUser(ctx, tx, key)
		if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
			return err
		}
		staleEmail := ""
		if old != nil && old.Email != user.Email {
			prevOwner, err := s.emailOwner(ctx, tx, old.Email)
			if err != nil {
				return err
			}
			if prevOwner == id {
				staleEmail = old.Email
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if staleEmail != "" {
				pipe.HDel(ctx, s.emailsKey(), staleEmail)
			}
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, s.usersKey(), id)
			pipe.HSet(ctx, s.emailsKey(), user.Email, id)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		return nil
	})
}

// watchUser выполняет fn под WATCH ключа пользователя и индекса email.
// При конкурентном изменении транзакция повторяется.
func (s *Storage) watchUser(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, fn, key, s.emailsKey())
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("user %s: %w", key, redis.TxFailedErr)
}

// emailOwner uuid из индекса email или "", если записи нет
func (s *Storage) emailOwner(ctx context.Context, tx *redis.Tx, email string) (string, error) {
	owner, err := tx.HGet(ctx, s.emailsKey(), email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis hget: %w", err)
	}
	return owner, nil
}

func (s *Storage) readUser(ctx context.Context, tx *redis.Tx, key string) (*models.User, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by UUID
func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	data, err := s.getJSON(ctx, s.userKey(id.String()), storage.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by exact email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	id, err := s.client.HGet(ctx, s.emailsKey(), email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("redis hget: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user uuid %q: %w", id, err)
	}

	return s.GetUser(ctx, parsed)
}

// GetAllUsers retrieves all users
func (s *Storage) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	values, err := s.loadAll(ctx, s.usersKey(), s.userKey)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, len(values))
	for _, v := range values {
		var user models.User
		if err := json.Unmarshal(v, &user); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user: %w", err)
		}
		users = append(users, &user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].UUID.String() < users[j].UUID.String() })

	return users, nil
}

// DeleteUser removes a user and its email index entry.
// Запись индекса удаляется, только если она указывает на этого пользователя.
func (s *Storage) DeleteUser(ctx context.Context, user *models.User) error {
	id := user.UUID.String()
	key := s.userKey(id)

	return s.watchUser(ctx, key, func(tx *redis.Tx) error {
		stored, err := s.readUser(ctx, tx, key)
		if err != nil {
			return err
		}
		owner, err := s.emailOwner(ctx, tx, stored.Email)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.SRem(ctx, s.usersKey(), id)
			if owner == id {
				pipe.HDel(ctx, s.emailsKey(), stored.Email)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
