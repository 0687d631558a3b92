package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterNewUser(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)

	err := svc.Register(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	stored, err := users.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, "hunter2", stored.Password, "password must never be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2")))
	assert.Empty(t, stored.Videogames)
}

func TestRegisterExistingUser(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)

	require.NoError(t, svc.Register(context.Background(), "ada@example.com", "hunter2"))

	err := svc.Register(context.Background(), "ada@example.com", "another")
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, users.users, 1, "no additional account may be created")
}

func TestLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)
	require.NoError(t, svc.Register(context.Background(), "ada@example.com", "hunter2"))

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "ada@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ada@example.com", "nope")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "hunter2")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
