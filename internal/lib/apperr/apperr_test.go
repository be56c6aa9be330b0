package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
)

func TestValidation_WrapsSentinel(t *testing.T) {
	err := apperr.Validation("visits must be >= 0, got %d", -1)

	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, "validation error: visits must be >= 0, got -1", err.Error())
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation with details",
			err:  fmt.Errorf("services.plans.Revenue: %w", apperr.Validation("visits must be non-negative")),
			want: "visits must be non-negative",
		},
		{
			name: "bare not found",
			err:  fmt.Errorf("storage.GetPlan: %w", apperr.ErrNotFound),
			want: "not found",
		},
		{
			name: "conflict with details",
			err:  fmt.Errorf("%w: user already exists", apperr.ErrConflict),
			want: "user already exists",
		},
		{
			name: "unknown error is hidden",
			err:  errors.New("pq: connection refused"),
			want: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.Message(tt.err))
		})
	}
}
