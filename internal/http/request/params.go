// Package request разбирает параметры пути и строки запроса.
// Ошибки разбора оборачивают apperr.ErrValidation.
package request

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
)

// PathID возвращает положительный целый параметр пути name.
func PathID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperr.Validation("%s must be a positive integer", name)
	}
	return id, nil
}

// QueryInt возвращает целый параметр key. При отсутствии параметра
// возвращает def, а если def == nil, ошибку.
func QueryInt(r *http.Request, key string, def *int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		if def == nil {
			return 0, apperr.Validation("%s is required", key)
		}
		return *def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation("%s must be an integer", key)
	}
	return v, nil
}

// QueryFloat возвращает необязательный числовой параметр key, nil при отсутствии.
func QueryFloat(r *http.Request, key string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, apperr.Validation("%s must be a number", key)
	}
	return &v, nil
}
