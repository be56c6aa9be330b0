package middlewarectx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
)

type ValidatorMock struct {
	mock.Mock
}

func (m *ValidatorMock) ValidateToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		setup      func(v *ValidatorMock)
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "no token",
			prepare:    func(_ *http.Request) {},
			setup:      func(_ *ValidatorMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "non bearer header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic abc")
			},
			setup:      func(_ *ValidatorMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid bearer token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good")
			},
			setup: func(v *ValidatorMock) {
				v.On("ValidateToken", mock.Anything, "good").Return("uid-1", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name: "valid cookie token",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: middlewarectx.CookieName, Value: "good"})
			},
			setup: func(v *ValidatorMock) {
				v.On("ValidateToken", mock.Anything, "good").Return("uid-1", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name: "cookie wins over header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: middlewarectx.CookieName, Value: "good"})
				r.Header.Set("Authorization", "Bearer other")
			},
			setup: func(v *ValidatorMock) {
				v.On("ValidateToken", mock.Anything, "good").Return("uid-1", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name: "rejected token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer expired")
			},
			setup: func(v *ValidatorMock) {
				v.On("ValidateToken", mock.Anything, "expired").Return("", errors.New("token invalid or missing")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := new(ValidatorMock)
			tt.setup(v)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				uid, ok := middlewarectx.UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "uid-1", uid)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil)
			tt.prepare(req)
			rr := httptest.NewRecorder()

			middlewarectx.SessionMiddleware(v, sl.Discard())(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantStatus == http.StatusUnauthorized {
				var body response.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, "token invalid or missing", body.Error)
			}
			v.AssertExpectations(t)
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	_, ok := middlewarectx.UserFromContext(context.Background())
	assert.False(t, ok)

	_, ok = middlewarectx.UserFromContext(middlewarectx.WithUser(context.Background(), ""))
	assert.False(t, ok)
}
