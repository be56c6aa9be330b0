package signup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-subscriptions/internal/http/response"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func TestSignupHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *ServiceMock)
		wantStatus int
		wantError  string
	}{
		{
			name: "created",
			body: `{"username":"alice","password":"s3cret"}`,
			setup: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "alice", "s3cret").Return("uid-alice", nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			setup:      func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "missing password",
			body:       `{"username":"alice"}`,
			setup:      func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "field Password is a required field",
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","password":"s3cret"}`,
			setup: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "alice", "s3cret").
					Return("", errors.Join(apperr.ErrConflict, errors.New("username already exists"))).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"username":"alice","password":"s3cret"}`,
			setup: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "alice", "s3cret").Return("", errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setup(svc)
			h := New(sl.Discard(), svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/signup", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, response.StatusOK, resp.Status)
				data := resp.Data.(map[string]any)
				assert.Equal(t, "uid-alice", data["user_uid"])
			} else {
				assert.Equal(t, response.StatusError, resp.Status)
				if tt.wantError != "" {
					assert.Contains(t, resp.Error, tt.wantError)
				}
			}
			svc.AssertExpectations(t)
		})
	}
}
