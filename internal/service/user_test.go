package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/repository"
)

func newUserService(t *testing.T, rec metrics.Recorder) *UserService {
	t.Helper()
	svc, err := NewUserService(repository.NewMemory(), []byte("test-secret"), time.Hour, rec)
	require.NoError(t, err)
	return svc
}

func TestUserService_Register(t *testing.T) {
	rec := metrics.NewInMemory()
	svc := newUserService(t, rec)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "correct horse battery staple", user.PasswordHash)

	// The issued token identifies the new user.
	userID, err := auth.VerifyToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	assert.Equal(t, uint64(1), rec.Snapshot().UsersRegistered)
}

func TestUserService_Register_Validation(t *testing.T) {
	svc := newUserService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{"missing name", RegisterInput{Email: "a@b.co", Password: "pw"}, ErrNameRequired},
		{"missing email", RegisterInput{Name: "A", Password: "pw"}, ErrEmailRequired},
		{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "pw"}, ErrEmailInvalid},
		{"email without domain", RegisterInput{Name: "A", Email: "a@b", Password: "pw"}, ErrEmailInvalid},
		{"missing password", RegisterInput{Name: "A", Email: "a@b.co"}, ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := newUserService(t, nil)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Name: "Imposter", Email: "alice@example.com", Password: "pw2"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserService_Login(t *testing.T) {
	rec := metrics.NewInMemory()
	svc := newUserService(t, rec)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice@example.com", "pw1")
	require.NoError(t, err)

	userID, err := auth.VerifyToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	assert.Equal(t, uint64(1), rec.Snapshot().LoginsSucceeded)
}

func TestUserService_Login_BadCredentials(t *testing.T) {
	rec := metrics.NewInMemory()
	svc := newUserService(t, rec)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	// Wrong password, unknown email and empty credentials are
	// indistinguishable to the caller.
	for _, c := range []struct{ email, password string }{
		{"alice@example.com", "wrong"},
		{"nobody@example.com", "pw1"},
		{"", "pw1"},
		{"alice@example.com", ""},
	} {
		_, err := svc.Login(ctx, c.email, c.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "email=%q password=%q", c.email, c.password)
	}

	assert.Equal(t, uint64(2), rec.Snapshot().LoginsFailed)
}

func TestUserService_GetUser(t *testing.T) {
	svc := newUserService(t, nil)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
