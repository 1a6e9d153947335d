package auth

import (
	"fmt"
	"testing"

	"authsvc/internal/services/auth"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus_EveryKindIsMapped(t *testing.T) {
	opaque := map[auth.Kind]bool{auth.KindStorage: true, auth.KindInternal: true}

	for k := auth.Kind(0); k.String() != fmt.Sprintf("Kind(%d)", int(k)); k++ {
		t.Run(k.String(), func(t *testing.T) {
			err := toStatus(fmt.Errorf("op: %w", &auth.Error{Kind: k, Msg: "detail"}))

			st, ok := status.FromError(err)
			assert.True(t, ok)

			if opaque[k] {
				assert.Equal(t, codes.Internal, st.Code())
				assert.Equal(t, "internal server error", st.Message())
				assert.Empty(t, Reason(err))
				return
			}

			assert.NotEqual(t, codes.Internal, st.Code())
			assert.NotEqual(t, codes.Unknown, st.Code())
			assert.Equal(t, "detail", st.Message())
			assert.NotEmpty(t, Reason(err))
		})
	}
}

func TestToStatus_Codes(t *testing.T) {
	tests := []struct {
		err    error
		code   codes.Code
		reason string
	}{
		{auth.ErrAccountNotFound, codes.NotFound, "NOT_FOUND"},
		{auth.ErrInvalidPassword, codes.Unauthenticated, "INVALID_PASSWORD"},
		{auth.ErrInvalidToken, codes.Unauthenticated, "INVALID_TOKEN"},
		{auth.ErrTokenExpired, codes.PermissionDenied, "TOKEN_EXPIRED"},
		{auth.ErrForbidden, codes.PermissionDenied, "NOT_ENOUGH_RIGHTS"},
		{auth.ErrSessionLimitExceeded, codes.ResourceExhausted, "NEED_PASSWORD_RESET"},
		{auth.ErrDuplicateSession, codes.AlreadyExists, "SESSION_EXISTS"},
		{auth.ErrAlreadyExists, codes.AlreadyExists, "ALREADY_EXISTS"},
		{auth.ErrInvalidSecret, codes.Unauthenticated, "INVALID_SECRET"},
		{auth.ErrNoInvitation, codes.FailedPrecondition, "NO_INVITATION_FOR_USER"},
		{fmt.Errorf("disk: %w", assert.AnError), codes.Internal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			err := toStatus(fmt.Errorf("auth.Op: %w", tt.err))
			assert.Equal(t, tt.code, status.Code(err))
			assert.Equal(t, tt.reason, Reason(err))
		})
	}
}
