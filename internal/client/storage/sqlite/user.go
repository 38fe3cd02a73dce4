package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/patinfly/internal/client/storage"
	"github.com/iudanet/patinfly/internal/models"
)

const userColumns = `uuid, name, email, hashed_password, creation_date, last_connection, device_id`

// SaveUser inserts or replaces a user.
// Email, занятый другим uuid, дает storage.ErrEmailTaken.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	id := user.UUID.String()

	var owner string
	err = tx.QueryRowContext(ctx, `SELECT uuid FROM users WHERE email = ?`, user.Email).Scan(&owner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("failed to check email owner: %w", err)
	case owner != id:
		return fmt.Errorf("%w: %s", storage.ErrEmailTaken, user.Email)
	}

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(uuid) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			hashed_password = excluded.hashed_password,
			creation_date = excluded.creation_date,
			last_connection = excluded.last_connection,
			device_id = excluded.device_id
	`

	_, err = tx.ExecContext(ctx, query,
		id,
		user.Name,
		user.Email,
		user.HashedPassword,
		user.CreationDate,
		user.LastConnection,
		user.DeviceID,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by UUID
func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = ?`
	return s.queryUser(ctx, query, id.String())
}

// GetUserByEmail retrieves a user by exact email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return s.queryUser(ctx, query, email)
}

// GetAllUsers retrieves all users
func (s *Storage) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY uuid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// DeleteUser removes a user by UUID
func (s *Storage) DeleteUser(ctx context.Context, user *models.User) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE uuid = ?`, user.UUID.String())
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return checkAffected(result, storage.ErrUserNotFound)
}

func (s *Storage) queryUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var id string

	err := row.Scan(
		&id,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.CreationDate,
		&user.LastConnection,
		&user.DeviceID,
	)
	if err != nil {
		return nil, err
	}

	user.UUID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user uuid %q: %w", id, err)
	}

	return user, nil
}
