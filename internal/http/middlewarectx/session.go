// Package middlewarectx содержит HTTP middleware проверки сессии и ограничения частоты запросов.
//
// SessionMiddleware берет токен из cookie "jwt" или из заголовка
// Authorization: Bearer, проверяет его и кладет UUID пользователя в контекст.
// Любая ошибка проверки дает 401 с одинаковым сообщением.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserUID ключ для UUID пользователя в контексте.
const UserUID Key = "user_uid"

// CookieName имя cookie с сессионным токеном.
const CookieName = "jwt"

// SessionValidator проверяет токен и возвращает UUID пользователя.
type SessionValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// TokenFromRequest возвращает токен из cookie, а при её отсутствии из заголовка Authorization.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// UserFromContext возвращает UUID пользователя, положенный SessionMiddleware.
func UserFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UserUID).(string)
	return uid, ok && uid != ""
}

// WithUser кладет UUID пользователя в контекст.
func WithUser(ctx context.Context, userUID string) context.Context {
	return context.WithValue(ctx, UserUID, userUID)
}

// SessionMiddleware пропускает запрос дальше только с действительной сессией.
func SessionMiddleware(validator SessionValidator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token := TokenFromRequest(r)
			if token == "" {
				log.Info("session token is missing")
				unauthorized(w, r)
				return
			}

			userUID, err := validator.ValidateToken(r.Context(), token)
			if err != nil || userUID == "" {
				log.Info("session token rejected", sl.Err(err))
				unauthorized(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userUID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(jwt.ErrInvalidToken.Error()))
}
