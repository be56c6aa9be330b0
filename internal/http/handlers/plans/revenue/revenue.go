// Package revenue реализует HTTP-обработчик расчета выручки и прибыли плана.
package revenue

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

// Service описывает расчет выручки.
type Service interface {
	Revenue(ctx context.Context, id, visits int, costPerVisit *float64) (models.Revenue, error)
}

// Handler обрабатывает GET /plans/{id}/revenue.
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
// @Summary Выручка плана
// @Description revenue = price + extra_visits * extra_visit_price, cost = visits * cost_per_visit, profit = revenue - cost.
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID плана"
// @Param visits query int true "Число визитов"
// @Param cost_per_visit query number false "Себестоимость визита, по умолчанию из конфигурации"
// @Success 200 {object} response.Response{data=models.Revenue}
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 401 {object} response.ErrorResponse "Сессия недействительна"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Router /plans/{id}/revenue [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.revenue"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := request.PathID(r, "id")
	if err != nil {
		response.RenderError(w, r, http.StatusBadRequest, err)
		return
	}
	visits, err := request.QueryInt(r, "visits", nil)
	if err != nil {
		response.RenderError(w, r, http.StatusBadRequest, err)
		return
	}
	cost, err := request.QueryFloat(r, "cost_per_visit")
	if err != nil {
		response.RenderError(w, r, http.StatusBadRequest, err)
		return
	}

	res, err := h.service.Revenue(r.Context(), id, visits, cost)
	if err != nil {
		log.Info("revenue computation rejected", slog.Int("id", id), sl.Err(err))
		response.RenderError(w, r, response.StatusFor(err), err)
		return
	}

	log.Debug("revenue computed", slog.Int("id", id), slog.Int("visits", visits), slog.Float64("profit", res.Profit))
	render.JSON(w, r, response.StatusOKWithData(res))
}
