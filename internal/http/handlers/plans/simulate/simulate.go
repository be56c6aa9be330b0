// Package simulate реализует HTTP-обработчик кривой прибыльности плана.
package simulate

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

// DefaultMaxVisits длина кривой, если max_visits не передан.
const DefaultMaxVisits = 20

// Service описывает построение кривой.
type Service interface {
	Simulate(ctx context.Context, id, maxVisits int, costPerVisit *float64) (models.Simulation, error)
}

// Handler обрабатывает GET /plans/{id}/simulate.
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
// @Summary Кривая прибыльности плана
// @Description Выручка, себестоимость и прибыль для визитов 0..max_visits и точка безубыточности.
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID плана"
// @Param max_visits query int false "Верхняя граница визитов (по умолчанию 20, максимум 1000)"
// @Param cost_per_visit query number false "Себестоимость визита"
// @Success 200 {object} response.Response{data=models.Simulation}
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 401 {object} response.ErrorResponse "Сессия недействительна"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Router /plans/{id}/simulate [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.simulate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := request.PathID(r, "id")
	if err != nil {
		response.RenderError(w, r, http.StatusBadRequest, err)
		return
	}
	def := DefaultMaxVisits
	maxVisits, err := request.QueryInt(r, "max_visits", &def)
	if err != nil {
		response.RenderError(w, r, http.StatusBadRequest, err)
		return
	}
	cost, err := request.QueryFloat(r, "cost_per_visit")
	if err != nil {
		response.RenderError(w, r, http.StatusBadRequest, err)
		return
	}

	sim, err := h.service.Simulate(r.Context(), id, maxVisits, cost)
	if err != nil {
		log.Info("simulation rejected", slog.Int("id", id), sl.Err(err))
		response.RenderError(w, r, response.StatusFor(err), err)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(sim))
}
