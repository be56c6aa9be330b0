package storage

import (
	"context"

	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его UID.
// Занятое имя пользователя возвращается как apperr.ErrConflict.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return "", err
	}

	query := `INSERT INTO users (username, password_hash)
			  VALUES ($1, $2)
			  RETURNING uid`
	var uid string
	if err := s.DB.QueryRowContext(ctx, query, user.Username, user.PasswordHash).Scan(&uid); err != nil {
		return "", mapError(op, err)
	}
	return uid, nil
}

// GetUserByUsername возвращает пользователя по точному (с учётом регистра) имени.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT uid, username, password_hash, created_at
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	if err := s.DB.QueryRowContext(ctx, query, username).
		Scan(&u.UUID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, mapError(op, err)
	}
	return u, nil
}
