// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avorobev/chatlog/internal/config"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/store"
	"github.com/avorobev/chatlog/internal/utils"
	"github.com/avorobev/chatlog/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn             func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn        func(ctx context.Context, email string) (models.User, error)
	findByRefreshTokenFn func(ctx context.Context, refreshToken string) (models.User, error)
	updateRefreshTokenFn func(ctx context.Context, userID string, refreshToken string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByRefreshToken(ctx context.Context, refreshToken string) (models.User, error) {
	if m.findByRefreshTokenFn != nil {
		return m.findByRefreshTokenFn(ctx, refreshToken)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	if m.updateRefreshTokenFn != nil {
		return m.updateRefreshTokenFn(ctx, userID, refreshToken)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) AuthService {
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "chatlog-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

func mustHashPassword(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := utils.HashPassword(plaintext, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	var created models.User
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			created = user
			user.CreatedAt = time.Now()
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	got, err := svc.RegisterUser(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.NotEmpty(t, got.ID)
	assert.NotEqual(t, "secret", created.PasswordHash)
	assert.NoError(t, utils.CheckPassword(created.PasswordHash, "secret"))
}

func TestRegisterUser_EmptyFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: "existing", Email: email}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), "alice@example.com", "secret")
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestRegisterUser_LookupError(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), "alice@example.com", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	hash := mustHashPassword(t, "secret")

	var savedUserID, savedRefreshToken string
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
		updateRefreshTokenFn: func(ctx context.Context, userID string, refreshToken string) error {
			savedUserID = userID
			savedRefreshToken = refreshToken
			return nil
		},
	}
	svc := newTestAuthService(repo)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "user-1", savedUserID)
	assert.NotEmpty(t, savedRefreshToken)
	assert.Equal(t, savedRefreshToken, user.RefreshToken)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	email, err := parsed.GetEmail()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "secret")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash := mustHashPassword(t, "secret")
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_RefreshTokenUpdateError(t *testing.T) {
	hash := mustHashPassword(t, "secret")
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: "user-1", Email: email, PasswordHash: hash}, nil
		},
		updateRefreshTokenFn: func(ctx context.Context, userID string, refreshToken string) error {
			return errors.New("db down")
		},
	}
	svc := newTestAuthService(repo)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

// ─────────────────────────────────────────────
// Refresh
// ─────────────────────────────────────────────

func TestRefresh_Success_TokenNotRotated(t *testing.T) {
	repo := &mockUserRepository{
		findByRefreshTokenFn: func(ctx context.Context, refreshToken string) (models.User, error) {
			return models.User{ID: "user-1", Email: "alice@example.com", RefreshToken: refreshToken}, nil
		},
		updateRefreshTokenFn: func(ctx context.Context, userID string, refreshToken string) error {
			t.Fatal("refresh must not rotate the stored token")
			return nil
		},
	}
	svc := newTestAuthService(repo)

	user, token, err := svc.Refresh(context.Background(), "refresh-1")

	require.NoError(t, err)
	assert.Equal(t, "refresh-1", user.RefreshToken)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	email, err := parsed.GetEmail()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestRefresh_UnknownToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, _, err := svc.Refresh(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnknownRefreshToken)
}

func TestRefresh_EmptyToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, _, err := svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

func TestParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
