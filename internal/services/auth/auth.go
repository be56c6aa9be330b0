// Package services содержит логику бизнес-уровня для работы с пользователями и сессиями.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/password"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials возвращается и для несуществующего пользователя, и для неверного пароля.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperr.ErrAuthentication)
	// ErrInvalidSession возвращается для любого непрошедшего проверку токена.
	ErrInvalidSession = fmt.Errorf("%w: %w", apperr.ErrAuthentication, jwt.ErrInvalidToken)
	// ErrUsernameTaken возвращается при повторной регистрации имени.
	ErrUsernameTaken = fmt.Errorf("%w: username already exists", apperr.ErrConflict)
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UUID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по точному имени или ошибку apperr.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и проверку сессий.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает пользователя с bcrypt-хешем пароля и возвращает его UUID.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Register"

	if strings.TrimSpace(username) == "" || rawPassword == "" {
		return "", apperr.Validation("username and password are required")
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.Validation("password must be at most 72 bytes")
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	uid, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Authenticate проверяет имя и пароль и возвращает UUID пользователя.
// Отсутствующий пользователь и неверный пароль неразличимы для вызывающего.
func (s *AuthService) Authenticate(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Authenticate"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			_ = password.CompareDummy(rawPassword)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.UUID, nil
}

// Login аутентифицирует пользователя и выпускает сессионный токен.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, time.Time, error) {
	const op = "services.auth.Login"

	uid, err := s.Authenticate(ctx, username, rawPassword)
	if err != nil {
		return "", time.Time{}, err
	}

	token, expiresAt, err := s.jwtMaker.GenerateToken(uid)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return token, expiresAt, nil
}

// ValidateToken проверяет сессионный токен и возвращает UUID пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (string, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return "", ErrInvalidSession
	}
	return claims.UserID, nil
}
