// Package compare реализует HTTP-обработчик сравнения планов при одинаковом числе визитов.
package compare

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

// Service описывает сравнение планов.
type Service interface {
	Compare(ctx context.Context, visits int, costPerVisit *float64) ([]models.Revenue, error)
}

// Handler обрабатывает GET /plans/compare.
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
// @Summary Сравнение планов
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param visits query int true "Число визитов"
// @Param cost_per_visit query number false "Себестоимость визита"
// @Success 200 {object} response.Response{data=[]models.Revenue}
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 401 {object} response.ErrorResponse "Сессия недействительна"
// @Router /plans/compare [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.compare"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	res, err := h.service.Compare(r.Context(), visits, cost)
	if err != nil {
		log.Info("comparison rejected", sl.Err(err))
		response.RenderError(w, r, response.StatusFor(err), err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(res))
}
