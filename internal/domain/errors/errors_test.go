package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsMatchesOrigin(t *testing.T) {
	err := ErrValidationFailed.WithDetails("email: required")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.True(t, errors.Is(errors.Wrap(err, "bind request"), ErrValidationFailed))
	assert.True(t, errors.Is(err.WithDetails("name: required"), ErrValidationFailed))
	assert.Equal(t, "email: required", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "", ErrValidationFailed.Details())
}

func TestBaseError_SameCodeDifferentErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"detailed conflict is not another conflict", ErrPromoInUse.WithDetails("SPRING20"), ErrPromoAlreadyExists, false},
		{"reset token is not generic validation", ErrResetTokenInvalid.WithDetails("expired"), ErrValidationFailed, false},
		{"wrapped message keeps identity", ErrPromoInUse.WrapMessage("SPRING20"), ErrPromoInUse, true},
		{"plain error", errors.New("boom"), ErrConflict, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}
