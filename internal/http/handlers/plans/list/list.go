// Package list реализует HTTP-обработчик получения каталога планов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

// Service описывает получение каталога.
type Service interface {
	List(ctx context.Context) ([]models.Plan, error)
}

// Handler обрабатывает GET /plans.
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
// @Summary Каталог планов
// @Description Возвращает все планы по возрастанию цены. included_visits равно числу или строке "Unlimited".
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.Plan}
// @Failure 401 {object} response.ErrorResponse "Сессия недействительна"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	plans, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		response.RenderError(w, r, response.StatusFor(err), err)
		return
	}

	log.Debug("plans listed", slog.Int("count", len(plans)))
	render.JSON(w, r, response.StatusOKWithData(plans))
}
