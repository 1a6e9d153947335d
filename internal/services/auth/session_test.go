package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"authsvc/internal/domain/models"
	"authsvc/internal/lib/jwt"
	"authsvc/internal/lib/logger/handlers/slogdiscard"
	"authsvc/internal/lib/secret"
	"authsvc/internal/services/auth"
	"authsvc/internal/storage/sqlite"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_HappyPath(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")

	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, epoch.Add(s.Cfg.AccessTTL), tokens.AccessExpiresAt)
	assert.Equal(t, epoch.Add(s.Cfg.RefreshTTL), tokens.RefreshExpiresAt)

	payload, err := s.Signer.Verify(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, defaultRole, payload.Role)
	assert.True(t, epoch.Equal(payload.IssuedAt))

	sessions := s.sessions(payload.Owner)
	require.Len(t, sessions, 1)
	assert.Equal(t, in.Fingerprint, sessions[0].Fingerprint)
	assert.Equal(t, in.UserAgent, sessions[0].UserAgent)
	assert.Equal(t, secret.HashToken(tokens.RefreshToken), sessions[0].TokenHash)
	assert.NotEqual(t, tokens.RefreshToken, sessions[0].TokenHash)

	verified, err := s.Auth.Verify(ctx, tokens.AccessToken, in.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, payload, verified)
}

func TestLogin_FailCases(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")

	tests := []struct {
		name   string
		modify func(*auth.LoginInput)
		kind   auth.Kind
	}{
		{"unknown identifier", func(in *auth.LoginInput) { in.Identifier = gofakeit.Email() }, auth.KindNotFound},
		{"other partition", func(in *auth.LoginInput) { in.Partition = "elsewhere" }, auth.KindNotFound},
		{"wrong password", func(in *auth.LoginInput) { in.Password = randomPassword() }, auth.KindInvalidCredential},
		{"empty password", func(in *auth.LoginInput) { in.Password = "" }, auth.KindInvalidCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt := in
			tt.modify(&attempt)

			_, err := s.Auth.Login(ctx, attempt)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestLogin_PendingInvitation(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	_, modTokens := s.moderator("p1")
	identifier := gofakeit.Email()
	_, err := s.Auth.Invite(ctx, auth.InviteInput{
		AccessToken: modTokens.AccessToken,
		Identifier:  identifier,
	})
	require.NoError(t, err)

	_, err = s.Auth.Login(ctx, auth.LoginInput{
		Identifier:  identifier,
		Partition:   "p1",
		Password:    "",
		Fingerprint: uuid.NewString(),
	})
	assert.ErrorIs(t, err, auth.ErrInvalidPassword)
}

func TestLogin_DuplicateSession(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	_, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	_, err = s.Auth.Login(ctx, in)
	assert.ErrorIs(t, err, auth.ErrDuplicateSession)
}

func TestLogin_SessionCap(t *testing.T) {
	const max = 3
	s := newSuite(t, func(c *auth.Config) { c.MaxSessions = max })
	ctx := context.Background()

	in := s.user("global")
	for range max {
		in.Fingerprint = uuid.NewString()
		_, err := s.Auth.Login(ctx, in)
		require.NoError(t, err)
	}

	in.Fingerprint = uuid.NewString()
	_, err := s.Auth.Login(ctx, in)
	assert.ErrorIs(t, err, auth.ErrSessionLimitExceeded)
}

func TestLogin_StaleSessionSameFingerprintIsReplaced(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	first, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	s.Clock.Advance(s.Cfg.RefreshTTL + time.Millisecond)

	second, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	payload, err := s.Signer.Verify(second.AccessToken)
	require.NoError(t, err)

	sessions := s.sessions(payload.Owner)
	require.Len(t, sessions, 1)
	assert.Equal(t, secret.HashToken(second.RefreshToken), sessions[0].TokenHash)
	assert.NotEqual(t, secret.HashToken(first.RefreshToken), sessions[0].TokenHash)
}

func TestLogin_StaleSessionsStillOccupyCap(t *testing.T) {
	s := newSuite(t, func(c *auth.Config) { c.MaxSessions = 2 })
	ctx := context.Background()

	in := s.user("global")
	for range 2 {
		in.Fingerprint = uuid.NewString()
		_, err := s.Auth.Login(ctx, in)
		require.NoError(t, err)
	}

	s.Clock.Advance(s.Cfg.RefreshTTL + time.Hour)

	in.Fingerprint = uuid.NewString()
	_, err := s.Auth.Login(ctx, in)
	assert.ErrorIs(t, err, auth.ErrSessionLimitExceeded)
}

func TestLogin_ConcurrentSameFingerprint(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Auth.Login(ctx, in)
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assertKind(t, err, auth.KindDuplicateSession)
	}
	assert.Equal(t, 1, ok)

	acc, err := s.Store.AccountByIdentifier(ctx, in.Identifier, in.Partition)
	require.NoError(t, err)
	assert.Len(t, s.sessions(acc.PublicID), 1)
}

// cancelAfterList cancels the caller's context once the session list has
// been read, right before Login starts writing.
type cancelAfterList struct {
	*sqlite.Storage
	cancel context.CancelFunc
}

func (c cancelAfterList) SessionsByOwner(ctx context.Context, owner string) ([]models.RefreshSession, error) {
	list, err := c.Storage.SessionsByOwner(ctx, owner)
	c.cancel()
	return list, err
}

func TestLogin_CallerCancellationDoesNotInterruptWrites(t *testing.T) {
	s := newSuite(t)
	in := s.user("global")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := cancelAfterList{Storage: s.Store, cancel: cancel}
	a := auth.New(
		slogdiscard.NewDiscardLogger(),
		store,
		store,
		s.Signer,
		s.Hasher,
		secret.NewIssuer(),
		s.Notifier,
		s.Clock,
		s.Cfg,
	)

	tokens, err := a.Login(ctx, in)
	require.NoError(t, err)
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	payload, err := s.Auth.Verify(context.Background(), tokens.AccessToken, in.Fingerprint)
	require.NoError(t, err)
	assert.Len(t, s.sessions(payload.Owner), 1)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	expiry := tokens.AccessExpiresAt

	s.Clock.Set(expiry.Add(-time.Millisecond))
	_, err = s.Auth.Verify(ctx, tokens.AccessToken, in.Fingerprint)
	require.NoError(t, err)

	s.Clock.Set(expiry)
	_, err = s.Auth.Verify(ctx, tokens.AccessToken, in.Fingerprint)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)

	s.Clock.Set(expiry.Add(time.Millisecond))
	_, err = s.Auth.Verify(ctx, tokens.AccessToken, in.Fingerprint)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestVerify_FailCases(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	_, err = s.Auth.Verify(ctx, "not-a-token", in.Fingerprint)
	assertKind(t, err, auth.KindInvalidCredential)

	_, err = s.Auth.Verify(ctx, tokens.AccessToken+"x", in.Fingerprint)
	assertKind(t, err, auth.KindInvalidCredential)

	_, err = s.Auth.Verify(ctx, tokens.AccessToken, uuid.NewString())
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestVerify_LogoutInvalidatesAccessToken(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	require.NoError(t, s.Auth.Logout(ctx, auth.LogoutInput{
		AccessToken: tokens.AccessToken,
		Fingerprint: in.Fingerprint,
	}))

	_, err = s.Auth.Verify(ctx, tokens.AccessToken, in.Fingerprint)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestVerify_StaleSessionIsPurged(t *testing.T) {
	s := newSuite(t, func(c *auth.Config) {
		c.AccessTTL = 2 * time.Hour
		c.RefreshTTL = time.Hour
	})
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	s.Clock.Advance(90 * time.Minute)

	payload, err := s.Auth.Verify(ctx, tokens.AccessToken, in.Fingerprint)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
	assert.Empty(t, payload.Owner)

	owner, err := s.Signer.Verify(tokens.AccessToken)
	require.NoError(t, err)
	assert.Empty(t, s.sessions(owner.Owner))
}

func TestRefresh_Rotation(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	s.Clock.Advance(time.Minute)

	rotated, err := s.Auth.Refresh(ctx, auth.RefreshInput{
		RefreshToken: tokens.RefreshToken,
		Fingerprint:  in.Fingerprint,
		UserAgent:    "refreshed-agent",
	})
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, rotated.AccessToken)
	assert.Equal(t, s.Clock.Now().Add(s.Cfg.RefreshTTL), rotated.RefreshExpiresAt)

	// The consumed token never works again.
	_, err = s.Auth.Refresh(ctx, auth.RefreshInput{RefreshToken: tokens.RefreshToken, Fingerprint: in.Fingerprint})
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)

	payload, err := s.Auth.Verify(ctx, rotated.AccessToken, in.Fingerprint)
	require.NoError(t, err)

	sessions := s.sessions(payload.Owner)
	require.Len(t, sessions, 1)
	assert.Equal(t, in.Fingerprint, sessions[0].Fingerprint)
	assert.Equal(t, "refreshed-agent", sessions[0].UserAgent)
	assert.Equal(t, secret.HashToken(rotated.RefreshToken), sessions[0].TokenHash)

	_, err = s.Auth.Refresh(ctx, auth.RefreshInput{RefreshToken: rotated.RefreshToken, Fingerprint: in.Fingerprint})
	require.NoError(t, err)
}

func TestRefresh_PicksUpRoleChange(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	before, err := s.Auth.Verify(ctx, tokens.AccessToken, in.Fingerprint)
	require.NoError(t, err)
	require.Equal(t, defaultRole, before.Role)

	s.setRole(before.Owner, "auditor")
	s.Clock.Advance(time.Minute)

	rotated, err := s.Auth.Refresh(ctx, auth.RefreshInput{RefreshToken: tokens.RefreshToken, Fingerprint: in.Fingerprint})
	require.NoError(t, err)

	after, err := s.Auth.Verify(ctx, rotated.AccessToken, in.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, "auditor", after.Role)
	assert.Equal(t, before.Owner, after.Owner)

	// A credential keeps the role it was minted with.
	old, err := s.Auth.Verify(ctx, tokens.AccessToken, in.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, defaultRole, old.Role)
}

func TestRefresh_WrongFingerprint(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	_, err = s.Auth.Refresh(ctx, auth.RefreshInput{RefreshToken: tokens.RefreshToken, Fingerprint: uuid.NewString()})
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)

	_, err = s.Auth.Refresh(ctx, auth.RefreshInput{RefreshToken: uuid.NewString(), Fingerprint: in.Fingerprint})
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestRefresh_Expired(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	// Live up to and including the deadline.
	s.Clock.Set(tokens.RefreshExpiresAt.Add(time.Millisecond))

	refresh := auth.RefreshInput{RefreshToken: tokens.RefreshToken, Fingerprint: in.Fingerprint}

	_, err = s.Auth.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)

	_, err = s.Auth.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestRefresh_AtDeadlineSucceeds(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	s.Clock.Set(tokens.RefreshExpiresAt)

	_, err = s.Auth.Refresh(ctx, auth.RefreshInput{RefreshToken: tokens.RefreshToken, Fingerprint: in.Fingerprint})
	assert.NoError(t, err)
}

func TestRefresh_ConcurrentSingleWinner(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Auth.Refresh(ctx, auth.RefreshInput{
				RefreshToken: tokens.RefreshToken,
				Fingerprint:  in.Fingerprint,
			})
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assertKind(t, err, auth.KindNotFound)
	}
	assert.Equal(t, 1, ok)
}

func TestLogout_Idempotent(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	payload, err := s.Signer.Verify(tokens.AccessToken)
	require.NoError(t, err)

	logout := auth.LogoutInput{PublicID: payload.Owner, Fingerprint: in.Fingerprint}
	require.NoError(t, s.Auth.Logout(ctx, logout))
	require.NoError(t, s.Auth.Logout(ctx, logout))
	assert.Empty(t, s.sessions(payload.Owner))

	// Unknown owner and fingerprint still succeed.
	require.NoError(t, s.Auth.Logout(ctx, auth.LogoutInput{PublicID: uuid.NewString(), Fingerprint: uuid.NewString()}))
}

func TestLogout_ExpiredAccessTokenStillLogsOut(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	s.Clock.Advance(s.Cfg.AccessTTL + time.Minute)

	require.NoError(t, s.Auth.Logout(ctx, auth.LogoutInput{AccessToken: tokens.AccessToken, Fingerprint: in.Fingerprint}))

	_, err = s.Auth.Refresh(ctx, auth.RefreshInput{RefreshToken: tokens.RefreshToken, Fingerprint: in.Fingerprint})
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestLogout_InvalidAccessTokenFallsBackToPublicID(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	tokens, err := s.Auth.Login(ctx, in)
	require.NoError(t, err)

	payload, err := s.Signer.Verify(tokens.AccessToken)
	require.NoError(t, err)

	other, err := jwt.NewSigner("another-signing-key")
	require.NoError(t, err)
	stranger := payload
	stranger.Owner = uuid.NewString()
	forged, err := other.Mint(stranger)
	require.NoError(t, err)

	require.NoError(t, s.Auth.Logout(ctx, auth.LogoutInput{
		AccessToken: forged,
		PublicID:    payload.Owner,
		Fingerprint: in.Fingerprint,
	}))
	assert.Empty(t, s.sessions(payload.Owner))
}

func TestLogout_FailCases(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	err := s.Auth.Logout(ctx, auth.LogoutInput{AccessToken: "garbage", Fingerprint: "f"})
	assertKind(t, err, auth.KindBadInput)

	err = s.Auth.Logout(ctx, auth.LogoutInput{Fingerprint: "f"})
	assertKind(t, err, auth.KindBadInput)
}

func TestStorageFailureIsOpaque(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	in := s.user("global")
	require.NoError(t, s.Store.Close())

	_, err := s.Auth.Login(ctx, in)
	assertKind(t, err, auth.KindStorage)
	assert.ErrorIs(t, err, auth.ErrStorage)
}
