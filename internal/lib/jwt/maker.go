// Package jwt реализует выпуск и проверку сессионных JWT токенов.
//
// Токен содержит идентификатор пользователя и абсолютный момент истечения.
// Сервер не хранит сессии: валидность определяется только подписью и сроком.
package jwt

import (
	"time"
)

// DefaultTTL время жизни токена, если в конфиге не задано иное.
const DefaultTTL = 6 * time.Hour

// Maker описывает интерфейс для выпуска и разбора сессионных токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя и возвращает момент его истечения.
	GenerateToken(userID string) (string, time.Time, error)
	// ParseToken проверяет токен и возвращает его claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker с подписью HS256 общим секретом процесса.
type MakerImpl struct {
	secretKey []byte           // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration    // Время жизни токена.
	now       func() time.Time // Источник текущего времени.
}

// Option настраивает MakerImpl.
type Option func(*MakerImpl)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(m *MakerImpl) {
		m.now = now
	}
}

// NewJWTMaker создаёт MakerImpl на основе секретного ключа и TTL.
// Неположительный TTL заменяется на DefaultTTL.
func NewJWTMaker(secretKey string, ttl time.Duration, opts ...Option) *MakerImpl {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL возвращает время жизни выпускаемых токенов.
func (j *MakerImpl) TTL() time.Duration {
	return j.tokenTTL
}
