package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken возвращается при любой ошибке проверки токена.
// Причина (подпись, формат, срок, claims) наружу не раскрывается.
var ErrInvalidToken = errors.New("token invalid or missing")

// CustomClaims описывает данные, хранящиеся в сессионном токене.
type CustomClaims struct {
	UserID               string `json:"user_id"` // Идентификатор пользователя
	jwt.RegisteredClaims        // ExpiresAt, IssuedAt
}

// GenerateToken создаёт токен для userID, подписывая его секретным ключом.
func (j *MakerImpl) GenerateToken(userID string) (string, time.Time, error) {
	const op = "jwt.GenerateToken"
	if strings.TrimSpace(userID) == "" {
		return "", time.Time{}, fmt.Errorf("%s: empty user id", op)
	}

	issuedAt := j.now()
	expiresAt := issuedAt.Add(j.tokenTTL)
	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return signed, expiresAt, nil
}

// ParseToken проверяет подпись, алгоритм и срок действия токена
// и возвращает claims. Любая ошибка сводится к ErrInvalidToken.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
