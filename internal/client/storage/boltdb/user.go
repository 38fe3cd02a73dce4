package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

// SaveUser stores or replaces a user.
// Индекс email -> uuid обновляется в той же транзакции.
// Email, занятый другим uuid, дает storage.ErrEmailTaken.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	return s.update(func(tx *bbolt.Tx) error {
		users, err := bucket(tx, bucketUsers)
		if err != nil {
			return err
		}
		emails, err := bucket(tx, bucketUserEmails)
		if err != nil {
			return err
		}

		key := []byte(user.UUID.String())

		if owner := emails.Get([]byte(user.Email)); owner != nil && !bytes.Equal(owner, key) {
			return fmt.Errorf("%w: %s", storage.ErrEmailTaken, user.Email)
		}

		// Если email изменился, удаляем старую запись индекса
		if users.Get(key) != nil {
			old, err := getUser(users, key)
			if err != nil {
				return err
			}
			if old.Email != user.Email {
				if err := deleteEmailIndex(emails, old.Email, key); err != nil {
					return err
				}
			}
		}

		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}

		if err := users.Put(key, data); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		if err := emails.Put([]byte(user.Email), key); err != nil {
			return fmt.Errorf("failed to save email index: %w", err)
		}

		return nil
	})
}

// deleteEmailIndex удаляет запись индекса, только если она указывает на key
func deleteEmailIndex(emails *bbolt.Bucket, email string, key []byte) error {
	if !bytes.Equal(emails.Get([]byte(email)), key) {
		return nil
	}
	if err := emails.Delete([]byte(email)); err != nil {
		return fmt.Errorf("failed to delete email index: %w", err)
	}
	return nil
}

// GetUser retrieves a user by UUID
func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user *models.User

	err := s.view(func(tx *bbolt.Tx) error {
		users, err := bucket(tx, bucketUsers)
		if err != nil {
			return err
		}

		user, err = getUser(users, []byte(id.String()))
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by exact email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user *models.User

	err := s.view(func(tx *bbolt.Tx) error {
		users, err := bucket(tx, bucketUsers)
		if err != nil {
			return err
		}
		emails, err := bucket(tx, bucketUserEmails)
		if err != nil {
			return err
		}

		key := emails.Get([]byte(email))
		if key == nil {
			return storage.ErrUserNotFound
		}

		user, err = getUser(users, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetAllUsers retrieves all users
func (s *Storage) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	result := make([]*models.User, 0)

	err := s.view(func(tx *bbolt.Tx) error {
		users, err := bucket(tx, bucketUsers)
		if err != nil {
			return err
		}

		return users.ForEach(func(k, v []byte) error {
			var user models.User
			if err := json.Unmarshal(v, &user); err != nil {
				return fmt.Errorf("failed to unmarshal user %s: %w", k, err)
			}
			result = append(result, &user)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteUser removes a user and its email index entry
func (s *Storage) DeleteUser(ctx context.Context, user *models.User) error {
	return s.update(func(tx *bbolt.Tx) error {
		users, err := bucket(tx, bucketUsers)
		if err != nil {
			return err
		}
		emails, err := bucket(tx, bucketUserEmails)
		if err != nil {
			return err
		}

		key := []byte(user.UUID.String())
		stored, err := getUser(users, key)
		if err != nil {
			return err
		}

		if err := users.Delete(key); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return deleteEmailIndex(emails, stored.Email, key)
	})
}

func getUser(b *bbolt.Bucket, key []byte) (*models.User, error) {
	data := b.Get(key)
	if data == nil {
		return nil, storage.ErrUserNotFound
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return user, nil
}
