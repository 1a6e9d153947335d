package auth

import (
	"errors"

	"authsvc/internal/services/auth"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const errorDomain = "authsvc"

// toStatus converts a service error into a gRPC status. Every kind is
// listed; Storage and Internal are reported without detail.
func toStatus(err error) error {
	var (
		code   codes.Code
		reason string
	)

	switch auth.KindOf(err) {
	case auth.KindBadInput:
		code, reason = codes.InvalidArgument, "BAD_REQUEST"
	case auth.KindNotFound:
		code, reason = codes.NotFound, "NOT_FOUND"
	case auth.KindInvalidCredential:
		code, reason = codes.Unauthenticated, "INVALID_TOKEN"
		if errors.Is(err, auth.ErrInvalidPassword) {
			reason = "INVALID_PASSWORD"
		}
	case auth.KindExpired:
		code, reason = codes.PermissionDenied, "TOKEN_EXPIRED"
	case auth.KindDuplicateSession:
		code, reason = codes.AlreadyExists, "SESSION_EXISTS"
	case auth.KindSessionLimitExceeded:
		code, reason = codes.ResourceExhausted, "NEED_PASSWORD_RESET"
	case auth.KindAlreadyExists:
		code, reason = codes.AlreadyExists, "ALREADY_EXISTS"
	case auth.KindInvalidSecret:
		code, reason = codes.Unauthenticated, "INVALID_SECRET"
	case auth.KindNoInvitation:
		code, reason = codes.FailedPrecondition, "NO_INVITATION_FOR_USER"
	case auth.KindForbidden:
		code, reason = codes.PermissionDenied, "NOT_ENOUGH_RIGHTS"
	case auth.KindStorage, auth.KindInternal:
		return status.Error(codes.Internal, "internal server error")
	default:
		return status.Error(codes.Internal, "internal server error")
	}

	msg := reason
	var e *auth.Error
	if errors.As(err, &e) {
		msg = e.Msg
	}

	return withReason(code, msg, reason)
}

func invalidArgument(err error) error {
	return withReason(codes.InvalidArgument, err.Error(), "BAD_REQUEST")
}

func withReason(code codes.Code, msg, reason string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: errorDomain,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// Reason extracts the ErrorInfo reason from a status error, or "" if there
// is none.
func Reason(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}
