// Package read реализует HTTP-обработчик получения плана по ID.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/request"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

// Service описывает получение плана.
type Service interface {
	Get(ctx context.Context, id int) (models.Plan, error)
}

// Handler обрабатывает GET /plans/{id}.
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
// @Summary План по ID
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID плана"
// @Success 200 {object} response.Response{data=models.Plan}
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Сессия недействительна"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Router /plans/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := request.PathID(r, "id")
	if err != nil {
		log.Info("bad plan id", sl.Err(err))
		response.RenderError(w, r, http.StatusBadRequest, err)
		return
	}

	plan, err := h.service.Get(r.Context(), id)
	if err != nil {
		log.Info("failed to get plan", slog.Int("id", id), sl.Err(err))
		response.RenderError(w, r, response.StatusFor(err), err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(plan))
}
