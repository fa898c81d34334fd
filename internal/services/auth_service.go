package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaevor/go-nanoid"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/auth"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// userIDLength keeps generated ids within the 20-character owner id column.
const userIDLength = 20

// AuthService is the identity collaborator: it registers users, verifies
// credentials, and issues the tokens the request boundary resolves the acting
// user from.
type AuthService struct {
	users  *repository.UserRepository
	hasher *auth.PasswordHasher
	jwt    *auth.JWTManager
	newID  func() string
}

func NewAuthService(users *repository.UserRepository, hasher *auth.PasswordHasher, jwtManager *auth.JWTManager) (*AuthService, error) {
	newID, err := nanoid.Standard(userIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}

	return &AuthService{
		users:  users,
		hasher: hasher,
		jwt:    jwtManager,
		newID:  newID,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameTaken
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           s.newID(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, int64, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, apperrors.ErrInvalidCredentials
		}
		return "", 0, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, s.jwt.TTLSeconds(), nil
}
