package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/patinfly/internal/client/repository"
	"github.com/iudanet/patinfly/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newUsersMock репозиторий с одним пользователем, поиск по нормализованному email
func newUsersMock(user *models.User) *repository.UserRepositoryMock {
	return &repository.UserRepositoryMock{
		GetUserFunc: func(ctx context.Context, email string) *models.User {
			if user == nil || models.NormalizeEmail(email) != models.NormalizeEmail(user.Email) {
				return nil
			}
			u := *user
			return &u
		},
		UpdateUserFunc: func(ctx context.Context, u *models.User) *models.User {
			return u
		},
	}
}

func newTestService(users repository.UserRepository) *service {
	s := NewService(users, testLogger()).(*service)
	s.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func testUser(password string) *models.User {
	return &models.User{
		UUID:           uuid.MustParse("5f0c9b7e-2a41-4c3b-9d8e-7a6b5c4d3e2f"),
		Name:           "Laia Puig",
		Email:          "laia.puig@patinfly.com",
		HashedPassword: password,
	}
}

func TestService_CheckUserExists(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newUsersMock(testUser("secret")))

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "exact", email: "laia.puig@patinfly.com", want: true},
		{name: "different case", email: "Laia.Puig@PATINFLY.com", want: true},
		{name: "surrounding spaces", email: "  laia.puig@patinfly.com  ", want: true},
		{name: "unknown", email: "nobody@patinfly.com", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CheckUserExists(ctx, tt.email))
		})
	}
}

func TestService_CheckUserExists_RepositoryReturnsOtherUser(t *testing.T) {
	other := testUser("secret")
	other.Email = "someone.else@patinfly.com"
	users := &repository.UserRepositoryMock{
		GetUserFunc: func(ctx context.Context, email string) *models.User {
			return other
		},
	}

	svc := newTestService(users)
	assert.False(t, svc.CheckUserExists(context.Background(), "laia.puig@patinfly.com"))
}

func TestService_Login_Plaintext(t *testing.T) {
	ctx := context.Background()
	users := newUsersMock(testUser("patinfly2024"))
	svc := newTestService(users)

	user, err := svc.Login(ctx, " LAIA.PUIG@patinfly.com", "patinfly2024")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Laia Puig", user.Name)
	assert.Equal(t, "2024-06-01T12:00:00Z", user.LastConnection)

	calls := users.UpdateUserCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "2024-06-01T12:00:00Z", calls[0].User.LastConnection)
}

func TestService_Login_Bcrypt(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("patinfly2024"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newTestService(newUsersMock(testUser(string(hash))))

	user, err := svc.Login(ctx, "laia.puig@patinfly.com", "patinfly2024")
	require.NoError(t, err)
	assert.NotNil(t, user)

	_, err = svc.Login(ctx, "laia.puig@patinfly.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// сам хеш не подходит как пароль
	_, err = svc.Login(ctx, "laia.puig@patinfly.com", string(hash))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		email     string
		password  string
		wantErrIs error
		errMsg    string
	}{
		{name: "wrong password", email: "laia.puig@patinfly.com", password: "nope", wantErrIs: ErrInvalidCredentials},
		{name: "password differs by case", email: "laia.puig@patinfly.com", password: "PATINFLY2024", wantErrIs: ErrInvalidCredentials},
		{name: "unknown user", email: "nobody@patinfly.com", password: "patinfly2024", wantErrIs: ErrUserNotFound},
		{name: "invalid email", email: "not-an-email", password: "patinfly2024", errMsg: "invalid input"},
		{name: "empty password", email: "laia.puig@patinfly.com", password: "", errMsg: "invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newUsersMock(testUser("patinfly2024"))
			svc := newTestService(users)

			user, err := svc.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.Nil(t, user)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, users.GetUserCalls(), "невалидный ввод не доходит до репозитория")
			}
			assert.Empty(t, users.UpdateUserCalls())
		})
	}
}

func TestService_Login_UpdateFailureIsNotFatal(t *testing.T) {
	users := newUsersMock(testUser("patinfly2024"))
	users.UpdateUserFunc = func(ctx context.Context, u *models.User) *models.User {
		return nil
	}
	svc := newTestService(users)

	user, err := svc.Login(context.Background(), "laia.puig@patinfly.com", "patinfly2024")
	require.NoError(t, err)
	assert.NotNil(t, user)
}
