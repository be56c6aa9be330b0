// Package renew реализует HTTP-обработчик продления подписки.
package renew

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/request"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

// Request срок продления. Пустое тело означает один месяц.
type Request struct {
	Months int `json:"months" validate:"min=1,max=36"`
}

// Service описывает продление подписки.
type Service interface {
	Renew(ctx context.Context, userUID string, id, months int) (models.Subscription, error)
}

// Handler обрабатывает POST /subscriptions/{id}/renew.
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
// @Summary Продление подписки
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID подписки"
// @Param request body Request false "Срок продления в месяцах"
// @Success 200 {object} response.Response{data=models.Subscription}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Сессия недействительна"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 409 {object} response.ErrorResponse "Подписка отменена"
// @Router /subscriptions/{id}/renew [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.renew"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user is missing in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("token invalid or missing"))
		return
	}

	id, err := request.PathID(r, "id")
	if err != nil {
		response.RenderError(w, r, http.StatusBadRequest, err)
		return
	}

	req := Request{Months: 1}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			render.JSON(w, r, response.ValidationError(verrs))
			return
		}
		render.JSON(w, r, response.Error("invalid request"))
		return
	}

	sub, err := h.service.Renew(r.Context(), userUID, id, req.Months)
	if err != nil {
		log.Info("failed to renew subscription", slog.Int("id", id), sl.Err(err))
		response.RenderError(w, r, response.StatusFor(err), err)
		return
	}

	log.Info("subscription renewed", slog.Int("id", id), slog.Time("end_date", sub.EndDate))
	render.JSON(w, r, response.StatusOKWithData(sub))
}
