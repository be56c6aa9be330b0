package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.raw)
			got, err := PathID(r, "id")
			if tt.wantErr {
				require.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt(t *testing.T) {
	def := 20

	r := httptest.NewRequest(http.MethodGet, "/?visits=5", nil)
	v, err := QueryInt(r, "visits", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	r = httptest.NewRequest(http.MethodGet, "/?visits=-2", nil)
	v, err = QueryInt(r, "visits", nil)
	require.NoError(t, err)
	assert.Equal(t, -2, v)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	_, err = QueryInt(r, "visits", nil)
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, "visits is required", apperr.Message(err))

	v, err = QueryInt(r, "max_visits", &def)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	r = httptest.NewRequest(http.MethodGet, "/?visits=2.5", nil)
	_, err = QueryInt(r, "visits", nil)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestQueryFloat(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?cost_per_visit=12.5", nil)
	v, err := QueryFloat(r, "cost_per_visit")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.InDelta(t, 12.5, *v, 1e-9)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	v, err = QueryFloat(r, "cost_per_visit")
	require.NoError(t, err)
	assert.Nil(t, v)

	for _, raw := range []string{"abc", "NaN", "Inf"} {
		r = httptest.NewRequest(http.MethodGet, "/?cost_per_visit="+raw, nil)
		_, err = QueryFloat(r, "cost_per_visit")
		assert.ErrorIs(t, err, apperr.ErrValidation, raw)
	}
}
