// Package cancel реализует HTTP-обработчик отмены подписки.
package cancel

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/request"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

// Service описывает отмену подписки.
type Service interface {
	Cancel(ctx context.Context, userUID string, id int) (models.Subscription, error)
}

// Handler обрабатывает DELETE /subscriptions/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отмена подписки
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID подписки"
// @Success 200 {object} response.Response{data=models.Subscription}
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Сессия недействительна"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 409 {object} response.ErrorResponse "Подписка уже отменена"
// @Router /subscriptions/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.cancel"

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

	sub, err := h.service.Cancel(r.Context(), userUID, id)
	if err != nil {
		log.Info("failed to cancel subscription", slog.Int("id", id), sl.Err(err))
		response.RenderError(w, r, response.StatusFor(err), err)
		return
	}

	log.Info("subscription cancelled", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(sub))
}
