// Package login реализует HTTP-обработчик входа пользователя.
//
// При успехе токен возвращается в теле ответа и устанавливается
// в HttpOnly cookie "jwt" со сроком жизни, равным сроку токена.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/metrics"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
)

// Request учетные данные пользователя.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает вход пользователя.
type Service interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// Handler обрабатывает POST /login.
type Handler struct {
	log          *slog.Logger        // Логгер для записи операций и ошибок
	authClient   Service             // Локальный сервис или gRPC-клиент аутентификации
	validate     *validator.Validate // Валидатор входных данных
	secureCookie bool                // Выставлять ли флаг Secure у cookie
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authClient Service, secureCookie bool) *Handler {
	return &Handler{
		log:          log,
		authClient:   authClient,
		validate:     validator.New(),
		secureCookie: secureCookie,
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Проверяет имя и пароль и выдает сессионный токен на 6 часов.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Токен выдан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 429 {object} response.ErrorResponse "Слишком много попыток"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		render.JSON(w, r, response.Error("invalid request"))
		return
	}

	token, expiresAt, err := h.authClient.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		status := response.StatusFor(err)
		if status == http.StatusUnauthorized {
			metrics.RecordLogin(false)
			log.Info("login rejected")
		} else {
			log.Error("login failed", sl.Err(err))
		}
		response.RenderError(w, r, status, err)
		return
	}
	metrics.RecordLogin(true)

	http.SetCookie(w, &http.Cookie{
		Name:     middlewarectx.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	log.Info("login success")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token":      token,
		"expires_at": expiresAt.UTC(),
	}))
}
