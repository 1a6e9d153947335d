package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"authsvc/internal/domain/models"
	"authsvc/internal/storage"
	"authsvc/internal/storage/migrations"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests run when AUTHSVC_TEST_POSTGRES_DSN is set.

func newStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv("AUTHSVC_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("AUTHSVC_TEST_POSTGRES_DSN is not set; skipping Postgres integration test")
	}

	if err := migrations.Up(migrations.DriverPostgres, dsn); err != nil && !errors.Is(err, migrations.ErrNoChange) {
		require.NoError(t, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func randomAccount(now time.Time) models.Account {
	return models.Account{
		PublicID:   uuid.NewString(),
		Identifier: gofakeit.Email(),
		Partition:  uuid.NewString(),
		Role:       "default",
		Profile:    models.Profile{Name: gofakeit.FirstName(), Surname: gofakeit.LastName()},
		PassHash:   []byte("hash"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPostgresAccounts(t *testing.T) {
	s := newStorage(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	acc := randomAccount(now)
	_, err := s.SaveAccount(ctx, acc)
	require.NoError(t, err)

	_, err = s.SaveAccount(ctx, acc)
	assert.ErrorIs(t, err, storage.ErrAccountExists)

	got, err := s.AccountByIdentifier(ctx, acc.Identifier, acc.Partition)
	require.NoError(t, err)
	assert.Equal(t, acc.PublicID, got.PublicID)
	assert.True(t, got.Activated())

	inv := randomAccount(now)
	inv.Partition = acc.Partition
	inv.Secret = uuid.NewString()
	invID, err := s.SaveInvitation(ctx, inv)
	require.NoError(t, err)

	pending, err := s.AccountByPublicID(ctx, inv.PublicID)
	require.NoError(t, err)
	assert.False(t, pending.Activated())
	assert.Equal(t, inv.Secret, pending.Secret)

	require.NoError(t, s.ActivateInvitation(ctx, invID, []byte("h"), now))
	assert.ErrorIs(t, s.ActivateInvitation(ctx, invID, []byte("h"), now), storage.ErrStateConflict)

	ids, err := s.AccountsByRole(ctx, "default", acc.Partition, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{acc.PublicID, inv.PublicID}, ids)

	_, err = s.AccountByPublicID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
}

func TestPostgresSessions(t *testing.T) {
	s := newStorage(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	owner := uuid.NewString()
	sess := models.RefreshSession{
		Owner:       owner,
		TokenHash:   uuid.NewString(),
		Fingerprint: "device-1",
		UserAgent:   gofakeit.UserAgent(),
		ExpiresAt:   now.Add(time.Hour),
		CreatedAt:   now,
	}
	id, err := s.SaveSession(ctx, sess)
	require.NoError(t, err)

	_, err = s.SaveSession(ctx, sess)
	assert.ErrorIs(t, err, storage.ErrSessionExists)

	next := sess
	next.TokenHash = uuid.NewString()
	newID, err := s.RotateSession(ctx, id, next)
	require.NoError(t, err)

	_, err = s.RotateSession(ctx, id, next)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	got, err := s.SessionByToken(ctx, next.TokenHash, "device-1")
	require.NoError(t, err)
	assert.Equal(t, newID, got.ID)
	assert.True(t, next.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, s.DeleteSession(ctx, owner, "device-1"))
	require.NoError(t, s.DeleteSession(ctx, owner, "device-1"))

	list, err := s.SessionsByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}
