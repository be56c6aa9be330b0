package list

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/health-subscriptions/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) List(ctx context.Context, userUID string) ([]models.Subscription, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

func request(userUID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions", nil)
	return req.WithContext(middlewarectx.WithUser(req.Context(), userUID))
}

func TestListHandler(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("List", mock.Anything, "uid-1").Return([]models.Subscription{{ID: 3, PlanID: 1, Status: "active"}}, nil).Once()
	svc.On("List", mock.Anything, "uid-2").Return([]models.Subscription{}, nil).Once()
	svc.On("List", mock.Anything, "uid-3").Return(nil, errors.New("db error")).Once()
	h := New(sl.Discard(), svc)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, request("uid-1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"plan_id":1`)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, request("uid-2"))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, request("uid-3"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	svc.AssertExpectations(t)
}
