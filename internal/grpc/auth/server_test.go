package auth

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	authv1 "authsvc/gen/go/authsvc/v1"
	"authsvc/internal/lib/clock"
	"authsvc/internal/lib/jwt"
	"authsvc/internal/lib/logger/handlers/slogdiscard"
	"authsvc/internal/lib/password"
	"authsvc/internal/lib/secret"
	"authsvc/internal/notifier/sender"
	"authsvc/internal/services/auth"
	"authsvc/internal/storage/migrations"
	"authsvc/internal/storage/sqlite"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

func startServer(t *testing.T, a Auth) authv1.AuthClient {
	t.Helper()

	return authv1.NewAuthClient(dial(t, a))
}

func dial(t *testing.T, a Auth) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	Register(srv, a)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func newService(t *testing.T) *auth.Auth {
	t.Helper()

	path := filepath.Join(t.TempDir(), "auth.db")
	require.NoError(t, migrations.Up(migrations.DriverSQLite, path))

	store, err := sqlite.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	signer, err := jwt.NewSigner("grpc-test-key")
	require.NoError(t, err)

	log := slogdiscard.NewDiscardLogger()

	return auth.New(
		log,
		store,
		store,
		signer,
		password.NewHasher(bcrypt.MinCost),
		secret.NewIssuer(),
		sender.NewLogOnly(log),
		clock.System(),
		auth.Config{
			AccessTTL:    time.Minute,
			RefreshTTL:   time.Hour,
			MaxSessions:  2,
			ElevatedRole: "moderator",
			DefaultRole:  "default",
		},
	)
}

func TestAuthFlow(t *testing.T) {
	client := startServer(t, newService(t))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := gofakeit.Email()
	pass := gofakeit.Password(true, true, true, false, false, 10)
	fingerprint := uuid.NewString()

	reg, err := client.Register(ctx, &authv1.RegisterRequest{
		Email:    email,
		Password: pass,
		Name:     gofakeit.FirstName(),
		Surname:  gofakeit.LastName(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.GetUserId())

	var header metadata.MD
	login, err := client.Login(ctx, &authv1.LoginRequest{
		Email:       email,
		Password:    pass,
		Fingerprint: fingerprint,
	}, grpc.Header(&header))
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, []string{login.RefreshToken}, header.Get(RefreshTokenHeader))
	assert.Greater(t, login.RefreshExpiresAt, login.AccessExpiresAt)

	verified, err := client.Verify(ctx, &authv1.VerifyRequest{AccessToken: login.AccessToken, Fingerprint: fingerprint})
	require.NoError(t, err)
	assert.Equal(t, reg.GetUserId(), verified.GetUserId())
	assert.Equal(t, "default", verified.Role)
	assert.Equal(t, login.AccessExpiresAt, verified.ExpiresIn)

	info, err := client.AccountInfo(ctx, &authv1.AccountInfoRequest{UserId: reg.GetUserId()})
	require.NoError(t, err)
	assert.Equal(t, email, info.GetEmail())

	list, err := client.ListAccounts(ctx, &authv1.ListAccountsRequest{Role: "default", Partition: defaultPartition})
	require.NoError(t, err)
	assert.Equal(t, []string{reg.GetUserId()}, list.GetUserIds())

	// Refresh token taken from metadata only.
	mdCtx := metadata.AppendToOutgoingContext(ctx, RefreshTokenHeader, login.RefreshToken)
	refreshed, err := client.Refresh(mdCtx, &authv1.RefreshRequest{Fingerprint: fingerprint})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	_, err = client.Refresh(ctx, &authv1.RefreshRequest{RefreshToken: login.RefreshToken, Fingerprint: fingerprint})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.Logout(ctx, &authv1.LogoutRequest{AccessToken: refreshed.AccessToken, Fingerprint: fingerprint})
	require.NoError(t, err)
	_, err = client.Logout(ctx, &authv1.LogoutRequest{UserId: reg.GetUserId(), Fingerprint: fingerprint})
	require.NoError(t, err)

	_, err = client.Verify(ctx, &authv1.VerifyRequest{AccessToken: refreshed.AccessToken, Fingerprint: fingerprint})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "NOT_FOUND", Reason(err))
}

func TestLogin_Errors(t *testing.T) {
	client := startServer(t, newService(t))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := gofakeit.Email()
	pass := gofakeit.Password(true, true, true, false, false, 10)
	_, err := client.Register(ctx, &authv1.RegisterRequest{Email: email, Password: pass, Name: "N", Surname: "S"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		req    *authv1.LoginRequest
		code   codes.Code
		reason string
	}{
		{
			name:   "invalid email",
			req:    &authv1.LoginRequest{Email: "nope", Password: pass, Fingerprint: "f"},
			code:   codes.InvalidArgument,
			reason: "BAD_REQUEST",
		},
		{
			name:   "short password",
			req:    &authv1.LoginRequest{Email: email, Password: "12345", Fingerprint: "f"},
			code:   codes.InvalidArgument,
			reason: "BAD_REQUEST",
		},
		{
			name:   "missing fingerprint",
			req:    &authv1.LoginRequest{Email: email, Password: pass},
			code:   codes.InvalidArgument,
			reason: "BAD_REQUEST",
		},
		{
			name:   "unknown account",
			req:    &authv1.LoginRequest{Email: gofakeit.Email(), Password: pass, Fingerprint: "f"},
			code:   codes.NotFound,
			reason: "NOT_FOUND",
		},
		{
			name:   "wrong password",
			req:    &authv1.LoginRequest{Email: email, Password: "wrong-password", Fingerprint: "f"},
			code:   codes.Unauthenticated,
			reason: "INVALID_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Login(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
			assert.Equal(t, tt.reason, Reason(err))
		})
	}

	for _, fp := range []string{"a", "b"} {
		_, err := client.Login(ctx, &authv1.LoginRequest{Email: email, Password: pass, Fingerprint: fp})
		require.NoError(t, err)
	}
	_, err = client.Login(ctx, &authv1.LoginRequest{Email: email, Password: pass, Fingerprint: "c"})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
	assert.Equal(t, "NEED_PASSWORD_RESET", Reason(err))
}

func TestRefresh_MissingToken(t *testing.T) {
	client := startServer(t, newService(t))

	_, err := client.Refresh(context.Background(), &authv1.RefreshRequest{Fingerprint: "f"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestLogout_RequiresOwner(t *testing.T) {
	client := startServer(t, newService(t))

	_, err := client.Logout(context.Background(), &authv1.LogoutRequest{Fingerprint: "f"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// An unusable token without a user id leaves no owner to log out.
	_, err = client.Logout(context.Background(), &authv1.LogoutRequest{AccessToken: "garbage", Fingerprint: "f"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "BAD_REQUEST", Reason(err))

	_, err = client.Logout(context.Background(), &authv1.LogoutRequest{
		AccessToken: "garbage",
		UserId:      uuid.NewString(),
		Fingerprint: "f",
	})
	assert.NoError(t, err)
}

func TestServer_ProtobufWire(t *testing.T) {
	a := newService(t)

	srv := grpc.NewServer()
	Register(srv, a)
	svc, ok := srv.GetServiceInfo()["authsvc.v1.Auth"]
	require.True(t, ok)
	assert.Len(t, svc.Methods, 10)
	assert.Equal(t, "authsvc/v1/auth.proto", svc.Metadata)

	conn := dial(t, a)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := gofakeit.Email()
	pass := gofakeit.Password(true, true, true, false, false, 10)

	// Plain Invoke with the default codec, no generated client involved.
	reg := new(authv1.RegisterResponse)
	err := conn.Invoke(ctx, authv1.Auth_Register_FullMethodName, &authv1.RegisterRequest{
		Email:    email,
		Password: pass,
		Name:     "N",
		Surname:  "S",
	}, reg)
	require.NoError(t, err)
	_, err = uuid.Parse(reg.GetUserId())
	require.NoError(t, err)

	raw, err := proto.Marshal(&authv1.AccountInfoRequest{UserId: reg.GetUserId()})
	require.NoError(t, err)
	decoded := new(authv1.AccountInfoRequest)
	require.NoError(t, proto.Unmarshal(raw, decoded))

	account := new(authv1.AccountInfoResponse)
	require.NoError(t, conn.Invoke(ctx, authv1.Auth_AccountInfo_FullMethodName, decoded, account))
	assert.Equal(t, email, account.GetEmail())
	assert.Equal(t, reg.GetUserId(), account.GetUserId())
}

func TestInvite_Forbidden(t *testing.T) {
	client := startServer(t, newService(t))

	_, err := client.Invite(context.Background(), &authv1.InviteRequest{
		AccessToken:        "garbage",
		Email:              gofakeit.Email(),
		Name:               "N",
		Surname:            "S",
		LinkToRegisterForm: "https://example.org/register",
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, "NOT_ENOUGH_RIGHTS", Reason(err))
}

func TestResetPassword_Validation(t *testing.T) {
	client := startServer(t, newService(t))

	_, err := client.ResetPassword(context.Background(), &authv1.ResetPasswordRequest{
		UserId:     "not-a-uuid",
		SecretCode: uuid.NewString(),
		Password:   "long-enough",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ResetPassword(context.Background(), &authv1.ResetPasswordRequest{
		UserId:     uuid.NewString(),
		SecretCode: uuid.NewString(),
		Password:   "long-enough",
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
