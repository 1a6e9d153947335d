package auth

import (
	"context"

	authv1 "authsvc/gen/go/authsvc/v1"
	"authsvc/internal/domain/models"
	"authsvc/internal/services/auth"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	defaultPartition = "global"

	// RefreshTokenHeader carries the refresh token in request and response
	// metadata.
	RefreshTokenHeader = "refresh-token"
	userAgentHeader    = "user-agent"
	statusOK           = "OK"
)

type Auth interface {
	Register(ctx context.Context, in auth.RegisterInput) (publicID string, err error)
	Login(ctx context.Context, in auth.LoginInput) (auth.Tokens, error)
	Verify(ctx context.Context, accessToken, fingerprint string) (models.AccessPayload, error)
	Refresh(ctx context.Context, in auth.RefreshInput) (auth.Tokens, error)
	Logout(ctx context.Context, in auth.LogoutInput) error
	Invite(ctx context.Context, in auth.InviteInput) (auth.Invitation, error)
	ForgotPassword(ctx context.Context, identifier, partition, link string) error
	ResetPassword(ctx context.Context, publicID, secretCode, newPassword string) error
	AccountInfo(ctx context.Context, publicID string) (models.Account, error)
	ListAccounts(ctx context.Context, role, partition, filter string) ([]string, error)
}

type serverAPI struct {
	authv1.UnimplementedAuthServer
	auth Auth
}

func Register(gRPC *grpc.Server, auth Auth) {
	authv1.RegisterAuthServer(gRPC, &serverAPI{auth: auth})
}

func (s *serverAPI) Register(
	ctx context.Context,
	req *authv1.RegisterRequest,
) (*authv1.RegisterResponse, error) {
	if err := validateRegister(req); err != nil {
		return nil, invalidArgument(err)
	}

	publicID, err := s.auth.Register(ctx, auth.RegisterInput{
		Identifier:       req.GetEmail(),
		Partition:        partitionOrDefault(req.GetPartition()),
		Password:         req.GetPassword(),
		Profile:          models.Profile{Name: req.GetName(), Surname: req.GetSurname()},
		InvitationSecret: req.GetInvitationCode(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &authv1.RegisterResponse{UserId: publicID}, nil
}

func (s *serverAPI) Login(
	ctx context.Context,
	req *authv1.LoginRequest,
) (*authv1.TokensResponse, error) {
	if err := validateLogin(req); err != nil {
		return nil, invalidArgument(err)
	}

	tokens, err := s.auth.Login(ctx, auth.LoginInput{
		Identifier:  req.GetEmail(),
		Partition:   partitionOrDefault(req.GetPartition()),
		Password:    req.GetPassword(),
		Fingerprint: req.GetFingerprint(),
		UserAgent:   incomingValue(ctx, userAgentHeader),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return tokensResponse(ctx, tokens), nil
}

func (s *serverAPI) Verify(
	ctx context.Context,
	req *authv1.VerifyRequest,
) (*authv1.VerifyResponse, error) {
	if err := validateVerify(req); err != nil {
		return nil, invalidArgument(err)
	}

	payload, err := s.auth.Verify(ctx, req.GetAccessToken(), req.GetFingerprint())
	if err != nil {
		return nil, toStatus(err)
	}

	return &authv1.VerifyResponse{
		UserId:    payload.Owner,
		Role:      payload.Role,
		ExpiresIn: payload.ExpiresAt.UnixMilli(),
		IssuedAt:  payload.IssuedAt.UnixMilli(),
	}, nil
}

func (s *serverAPI) Refresh(
	ctx context.Context,
	req *authv1.RefreshRequest,
) (*authv1.TokensResponse, error) {
	refreshToken := req.GetRefreshToken()
	if refreshToken == "" {
		refreshToken = incomingValue(ctx, RefreshTokenHeader)
	}
	if err := validateRefresh(refreshToken, req); err != nil {
		return nil, invalidArgument(err)
	}

	tokens, err := s.auth.Refresh(ctx, auth.RefreshInput{
		RefreshToken: refreshToken,
		Fingerprint:  req.GetFingerprint(),
		UserAgent:    incomingValue(ctx, userAgentHeader),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return tokensResponse(ctx, tokens), nil
}

func (s *serverAPI) Logout(
	ctx context.Context,
	req *authv1.LogoutRequest,
) (*authv1.StatusResponse, error) {
	if err := validateLogout(req); err != nil {
		return nil, invalidArgument(err)
	}

	err := s.auth.Logout(ctx, auth.LogoutInput{
		AccessToken: req.GetAccessToken(),
		PublicID:    req.GetUserId(),
		Fingerprint: req.GetFingerprint(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &authv1.StatusResponse{Status: statusOK}, nil
}

func (s *serverAPI) Invite(
	ctx context.Context,
	req *authv1.InviteRequest,
) (*authv1.InviteResponse, error) {
	if err := validateInvite(req); err != nil {
		return nil, invalidArgument(err)
	}

	inv, err := s.auth.Invite(ctx, auth.InviteInput{
		AccessToken: req.GetAccessToken(),
		Identifier:  req.GetEmail(),
		Profile:     models.Profile{Name: req.GetName(), Surname: req.GetSurname()},
		Role:        req.GetRole(),
		Link:        req.GetLinkToRegisterForm(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	// The secret only travels through the notifier.
	return &authv1.InviteResponse{UserId: inv.PublicID}, nil
}

func (s *serverAPI) ForgotPassword(
	ctx context.Context,
	req *authv1.ForgotPasswordRequest,
) (*authv1.StatusResponse, error) {
	if err := validateForgotPassword(req); err != nil {
		return nil, invalidArgument(err)
	}

	err := s.auth.ForgotPassword(ctx, req.GetEmail(), partitionOrDefault(req.GetPartition()), req.GetLinkToResetForm())
	if err != nil {
		return nil, toStatus(err)
	}

	return &authv1.StatusResponse{Status: statusOK}, nil
}

func (s *serverAPI) ResetPassword(
	ctx context.Context,
	req *authv1.ResetPasswordRequest,
) (*authv1.StatusResponse, error) {
	if err := validateResetPassword(req); err != nil {
		return nil, invalidArgument(err)
	}

	if err := s.auth.ResetPassword(ctx, req.GetUserId(), req.GetSecretCode(), req.GetPassword()); err != nil {
		return nil, toStatus(err)
	}

	return &authv1.StatusResponse{Status: statusOK}, nil
}

func (s *serverAPI) AccountInfo(
	ctx context.Context,
	req *authv1.AccountInfoRequest,
) (*authv1.AccountInfoResponse, error) {
	if err := validateAccountInfo(req); err != nil {
		return nil, invalidArgument(err)
	}

	acc, err := s.auth.AccountInfo(ctx, req.GetUserId())
	if err != nil {
		return nil, toStatus(err)
	}

	return &authv1.AccountInfoResponse{
		UserId:  acc.PublicID,
		Email:   acc.Identifier,
		Name:    acc.Profile.Name,
		Surname: acc.Profile.Surname,
		Role:    acc.Role,
	}, nil
}

func (s *serverAPI) ListAccounts(
	ctx context.Context,
	req *authv1.ListAccountsRequest,
) (*authv1.ListAccountsResponse, error) {
	if err := validateListAccounts(req); err != nil {
		return nil, invalidArgument(err)
	}

	ids, err := s.auth.ListAccounts(ctx, req.GetRole(), req.GetPartition(), req.GetFilter())
	if err != nil {
		return nil, toStatus(err)
	}

	return &authv1.ListAccountsResponse{UserIds: ids}, nil
}

// tokensResponse also sets the refresh token as response header metadata.
func tokensResponse(ctx context.Context, t auth.Tokens) *authv1.TokensResponse {
	_ = grpc.SetHeader(ctx, metadata.Pairs(RefreshTokenHeader, t.RefreshToken))

	return &authv1.TokensResponse{
		AccessToken:      t.AccessToken,
		RefreshToken:     t.RefreshToken,
		AccessExpiresAt:  t.AccessExpiresAt.UnixMilli(),
		RefreshExpiresAt: t.RefreshExpiresAt.UnixMilli(),
	}
}

func incomingValue(ctx context.Context, key string) string {
	if v := metadata.ValueFromIncomingContext(ctx, key); len(v) > 0 {
		return v[0]
	}
	return ""
}

func partitionOrDefault(p string) string {
	if p == "" {
		return defaultPartition
	}
	return p
}
