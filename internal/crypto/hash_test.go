package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("patinfly2024", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, IsHashed(hash))
	assert.NotEqual(t, "patinfly2024", hash)
	assert.NoError(t, VerifyPassword("patinfly2024", hash))

	_, err = HashPassword("", bcrypt.MinCost)
	assert.EqualError(t, err, "password cannot be empty")
}

func TestHashPassword_CostOutOfRange(t *testing.T) {
	hash, err := HashPassword("secret", 1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		wantErr  error
		name     string
		password string
		stored   string
	}{
		{name: "plaintext match", password: "secret", stored: "secret"},
		{name: "plaintext trailing space", password: "secret", stored: "secret ", wantErr: ErrPasswordMismatch},
		{name: "plaintext empty password", password: "", stored: "secret", wantErr: ErrPasswordMismatch},
		{name: "bcrypt match", password: "secret", stored: hash},
		{name: "bcrypt mismatch", password: "other", stored: hash, wantErr: ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, tt.stored)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyPassword_Errors(t *testing.T) {
	err := VerifyPassword("secret", "")
	assert.EqualError(t, err, "stored password cannot be empty")

	// похоже на bcrypt, но хеш битый
	err = VerifyPassword("secret", "$2a$broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
