// Package signup реализует HTTP-обработчик регистрации пользователя.
package signup

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
)

// Request входные данные регистрации.
type Request struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, username, password string) (string, error)
}

// Handler обрабатывает POST /signup.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создает пользователя с уникальным именем. Повторное имя отклоняется со статусом 400.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Имя и пароль"
// @Success 201 {object} response.Response "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или имя занято"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

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

	uid, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		status := response.StatusFor(err)
		if errors.Is(err, apperr.ErrConflict) {
			status = http.StatusBadRequest
		}
		if status == http.StatusInternalServerError {
			log.Error("failed to register user", sl.Err(err))
		} else {
			log.Info("registration rejected", sl.Err(err))
		}
		response.RenderError(w, r, status, err)
		return
	}

	log.Info("user registered", slog.String("user_uid", uid))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user_uid": uid,
		"username": req.Username,
	}))
}
