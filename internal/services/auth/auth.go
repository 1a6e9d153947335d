package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"authsvc/internal/domain/models"
	"authsvc/internal/lib/clock"
	"authsvc/internal/lib/sl"
)

// Auth runs the credential and session lifecycle: login, verification,
// refresh rotation, logout, invitations and password reset.
type Auth struct {
	log      *slog.Logger
	accounts AccountStore
	sessions SessionStore
	signer   TokenSigner
	hasher   PasswordHasher
	secrets  SecretIssuer
	notifier Notifier
	clock    clock.Clock
	cfg      Config
}

type Config struct {
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	MaxSessions  int
	ElevatedRole string
	DefaultRole  string
	SourceEmail  string
}

type AccountProvider interface {
	AccountByPublicID(ctx context.Context, publicID string) (models.Account, error)
	AccountByIdentifier(ctx context.Context, identifier, partition string) (models.Account, error)
	AccountsByRole(ctx context.Context, role, partition, filter string) ([]string, error)
}

type AccountSaver interface {
	SaveAccount(ctx context.Context, acc models.Account) (int64, error)
	SaveInvitation(ctx context.Context, acc models.Account) (int64, error)
	ActivateInvitation(ctx context.Context, accountID int64, passHash []byte, now time.Time) error
	SetSecret(ctx context.Context, publicID, secret string, now time.Time) error
	UpdatePassword(ctx context.Context, publicID string, passHash []byte, now time.Time) error
}

type AccountStore interface {
	AccountProvider
	AccountSaver
}

type SessionStore interface {
	SessionsByOwner(ctx context.Context, owner string) ([]models.RefreshSession, error)
	SessionByToken(ctx context.Context, tokenHash, fingerprint string) (models.RefreshSession, error)
	SaveSession(ctx context.Context, sess models.RefreshSession) (int64, error)
	DeleteSession(ctx context.Context, owner, fingerprint string) error
	RotateSession(ctx context.Context, oldID int64, next models.RefreshSession) (int64, error)
}

type TokenSigner interface {
	Mint(p models.AccessPayload) (string, error)
	Verify(token string) (models.AccessPayload, error)
}

type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}

type SecretIssuer interface {
	Issue() (string, error)
}

type Notifier interface {
	Send(ctx context.Context, n models.Notification) error
}

// Tokens is the credential pair handed to a client after login or refresh.
type Tokens struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// New returns a new instance of the Auth service.
func New(
	log *slog.Logger,
	accounts AccountStore,
	sessions SessionStore,
	signer TokenSigner,
	hasher PasswordHasher,
	secrets SecretIssuer,
	notifier Notifier,
	clk clock.Clock,
	cfg Config,
) *Auth {
	return &Auth{
		log:      log,
		accounts: accounts,
		sessions: sessions,
		signer:   signer,
		hasher:   hasher,
		secrets:  secrets,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
	}
}

// storageFailure logs err with full context and hides it behind ErrStorage.
func storageFailure(log *slog.Logger, op, msg string, err error) error {
	log.Error(msg, sl.Err(err))
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

func internalFailure(log *slog.Logger, op, msg string, err error) error {
	log.Error(msg, sl.Err(err))
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}

// mintAccess signs a credential for acc valid until now+AccessTTL.
func (a *Auth) mintAccess(acc models.Account, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(a.cfg.AccessTTL)
	token, err := a.signer.Mint(models.AccessPayload{
		Owner:     acc.PublicID,
		Role:      acc.Role,
		ExpiresAt: expiresAt,
		IssuedAt:  now,
	})
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// secretLink resolves "/<secret>" against the origin of base.
func secretLink(base, secret string) (string, error) {
	if base == "" {
		return "", nil
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: invalid link %q", ErrBadInput, base)
	}
	return u.ResolveReference(&url.URL{Path: "/" + secret}).String(), nil
}

// notify delivers n. Delivery failures are logged and never undo the state
// change that produced the secret.
func (a *Auth) notify(ctx context.Context, log *slog.Logger, n models.Notification) {
	if err := a.notifier.Send(detach(ctx), n); err != nil {
		log.Warn("failed to deliver notification",
			slog.String("template", n.TemplateID),
			sl.Err(err),
		)
	}
}

// detach strips caller cancellation from ctx. Store writes and notifications
// run under it, so an operation that has started changing state runs to
// completion even if the caller gives up.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
