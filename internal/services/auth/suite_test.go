package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"authsvc/internal/domain/models"
	"authsvc/internal/lib/clock"
	"authsvc/internal/lib/jwt"
	"authsvc/internal/lib/logger/handlers/slogdiscard"
	"authsvc/internal/lib/password"
	"authsvc/internal/lib/secret"
	"authsvc/internal/services/auth"
	"authsvc/internal/storage/migrations"
	"authsvc/internal/storage/sqlite"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	signingKey   = "test-signing-key"
	elevatedRole = "moderator"
	defaultRole  = "default"
	sourceEmail  = "noreply@example.org"
)

var epoch = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, msg models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func (n *recordingNotifier) last(t *testing.T) models.Notification {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.sent, "no notification sent")
	return n.sent[len(n.sent)-1]
}

type suite struct {
	*testing.T
	Auth     *auth.Auth
	Store    *sqlite.Storage
	DBPath   string
	Clock    *clock.Manual
	Notifier *recordingNotifier
	Signer   *jwt.Signer
	Hasher   *password.Hasher
	Cfg      auth.Config
}

func newSuite(t *testing.T, opts ...func(*auth.Config)) *suite {
	t.Helper()

	path := filepath.Join(t.TempDir(), "auth.db")
	require.NoError(t, migrations.Up(migrations.DriverSQLite, path))

	store, err := sqlite.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	signer, err := jwt.NewSigner(signingKey)
	require.NoError(t, err)

	cfg := auth.Config{
		AccessTTL:    20 * time.Minute,
		RefreshTTL:   256 * time.Hour,
		MaxSessions:  5,
		ElevatedRole: elevatedRole,
		DefaultRole:  defaultRole,
		SourceEmail:  sourceEmail,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &suite{
		T:        t,
		Store:    store,
		DBPath:   path,
		Clock:    clock.NewManual(epoch),
		Notifier: &recordingNotifier{},
		Signer:   signer,
		Hasher:   password.NewHasher(bcrypt.MinCost),
		Cfg:      cfg,
	}

	s.Auth = auth.New(
		slogdiscard.NewDiscardLogger(),
		store,
		store,
		signer,
		s.Hasher,
		secret.NewIssuer(),
		s.Notifier,
		s.Clock,
		cfg,
	)

	return s
}

// user registers a fresh active account and returns its login input.
func (s *suite) user(partition string) auth.LoginInput {
	s.Helper()

	in := auth.LoginInput{
		Identifier:  gofakeit.Email(),
		Partition:   partition,
		Password:    randomPassword(),
		Fingerprint: uuid.NewString(),
		UserAgent:   gofakeit.UserAgent(),
	}

	_, err := s.Auth.Register(context.Background(), auth.RegisterInput{
		Identifier: in.Identifier,
		Partition:  in.Partition,
		Password:   in.Password,
		Profile:    models.Profile{Name: gofakeit.FirstName(), Surname: gofakeit.LastName()},
	})
	require.NoError(s, err)

	return in
}

// moderator stores an elevated account directly and logs it in.
func (s *suite) moderator(partition string) (models.Account, auth.Tokens) {
	s.Helper()

	pass := randomPassword()
	hash, err := s.Hasher.Hash(pass)
	require.NoError(s, err)

	acc := models.Account{
		PublicID:   uuid.NewString(),
		Identifier: gofakeit.Email(),
		Partition:  partition,
		Role:       elevatedRole,
		PassHash:   hash,
		CreatedAt:  s.Clock.Now(),
		UpdatedAt:  s.Clock.Now(),
	}
	_, err = s.Store.SaveAccount(context.Background(), acc)
	require.NoError(s, err)

	tokens, err := s.Auth.Login(context.Background(), auth.LoginInput{
		Identifier:  acc.Identifier,
		Partition:   partition,
		Password:    pass,
		Fingerprint: uuid.NewString(),
	})
	require.NoError(s, err)

	return acc, tokens
}

// checkInvariant asserts that an account without a credential always has an
// active secret.
func (s *suite) checkInvariant(publicID string) models.Account {
	s.Helper()

	acc, err := s.Store.AccountByPublicID(context.Background(), publicID)
	require.NoError(s, err)
	if !acc.Activated() {
		assert.True(s, acc.SecretActive, "pending account %s without active secret", publicID)
		assert.NotEmpty(s, acc.Secret)
	}
	return acc
}

func (s *suite) sessions(owner string) []models.RefreshSession {
	s.Helper()

	list, err := s.Store.SessionsByOwner(context.Background(), owner)
	require.NoError(s, err)
	return list
}

// setRole changes an account's role behind the service's back.
func (s *suite) setRole(publicID, role string) {
	s.Helper()

	db, err := sql.Open("sqlite3", s.DBPath+"?_busy_timeout=5000")
	require.NoError(s, err)
	defer db.Close()

	res, err := db.Exec("UPDATE accounts SET role = ? WHERE public_id = ?", role, publicID)
	require.NoError(s, err)
	n, err := res.RowsAffected()
	require.NoError(s, err)
	require.EqualValues(s, 1, n)
}

func assertKind(t *testing.T, err error, want auth.Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, auth.KindOf(err), "error: %v", err)
}

func randomPassword() string {
	return gofakeit.Password(true, true, true, false, false, 10)
}

var errDeliveryFailed = errors.New("sender unavailable")
