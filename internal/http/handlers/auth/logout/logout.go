// Package logout реализует HTTP-обработчик выхода: клиенту отдается просроченная cookie сессии.
package logout

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
)

// Handler обрабатывает POST /logout.
type Handler struct {
	log          *slog.Logger
	secureCookie bool
}

// New создает Handler.
func New(log *slog.Logger, secureCookie bool) *Handler {
	return &Handler{
		log:          log,
		secureCookie: secureCookie,
	}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Удаляет cookie сессии. Сам токен остается валидным до истечения срока.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	http.SetCookie(w, &http.Cookie{
		Name:     middlewarectx.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	h.log.Info("session cookie cleared",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	render.JSON(w, r, response.OK())
}
