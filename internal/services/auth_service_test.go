package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/auth"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

func newAuthService(t *testing.T) (*AuthService, *auth.JWTManager) {
	db := setupTestDB(t)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	svc, err := NewAuthService(repository.NewUserRepository(db), auth.NewPasswordHasher(), jwtManager)
	require.NoError(t, err)

	return svc, jwtManager
}

func TestAuthService_RegisterCreatesUser(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "johnsmith", "Password123!")
	require.NoError(t, err)

	assert.Len(t, user.ID, 20)
	assert.Equal(t, "johnsmith", user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Password123!", user.PasswordHash)
}

func TestAuthService_RegisterRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "johnsmith", "Password123!")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "johnsmith", "OtherPassword1!")
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestAuthService_LoginReturnsValidToken(t *testing.T) {
	svc, jwtManager := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "johnsmith", "Password123!")
	require.NoError(t, err)

	token, expiresIn, err := svc.Login(ctx, "johnsmith", "Password123!")
	require.NoError(t, err)
	assert.EqualValues(t, 3600, expiresIn)

	claims, err := jwtManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "johnsmith", claims.Username)
}

func TestAuthService_LoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "johnsmith", "Password123!")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "johnsmith", "WrongPassword1!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody", "Password123!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
