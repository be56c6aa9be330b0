package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/plans/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/plans/{id}", "404"))

	req := httptest.NewRequest(http.MethodGet, "/plans/42", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/plans/{id}", "404"))
	assert.Equal(t, before+1, after)
}

func TestMiddleware_DefaultStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecorders(t *testing.T) {
	okBefore := testutil.ToFloat64(loginsTotal.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(loginsTotal.WithLabelValues("failure"))
	RecordLogin(true)
	RecordLogin(false)
	RecordLogin(false)
	assert.Equal(t, okBefore+1, testutil.ToFloat64(loginsTotal.WithLabelValues("success")))
	assert.Equal(t, failBefore+2, testutil.ToFloat64(loginsTotal.WithLabelValues("failure")))

	revBefore := testutil.ToFloat64(revenueComputations.WithLabelValues("Lite Care Pack"))
	RecordRevenue("Lite Care Pack")
	assert.Equal(t, revBefore+1, testutil.ToFloat64(revenueComputations.WithLabelValues("Lite Care Pack")))

	evBefore := testutil.ToFloat64(subscriptionEvents.WithLabelValues("subscription.purchased", "failed"))
	RecordSubscriptionEvent("subscription.purchased", false)
	assert.Equal(t, evBefore+1, testutil.ToFloat64(subscriptionEvents.WithLabelValues("subscription.purchased", "failed")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordLogin(true)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthsub_auth_logins_total")
}
