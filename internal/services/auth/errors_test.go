package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"sentinel", ErrSessionLimitExceeded, KindSessionLimitExceeded},
		{"wrapped", fmt.Errorf("auth.Login: %w", ErrInvalidPassword), KindInvalidCredential},
		{"storage wraps driver error", fmt.Errorf("op: %w: %w", ErrStorage, errors.New("disk full")), KindStorage},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "NoInvitation", KindNoInvitation.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
