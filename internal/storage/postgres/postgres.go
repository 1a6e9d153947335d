package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"authsvc/internal/domain/models"
	"authsvc/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type Storage struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL using dsn and verifies the connection.
func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgres.New"

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

const accountColumns = `id, public_id, identifier, partition, role, name, surname,
	pass_hash, COALESCE(secret_code, ''), secret_active, created_at, updated_at`

func (s *Storage) SaveAccount(ctx context.Context, acc models.Account) (int64, error) {
	const op = "storage.postgres.SaveAccount"

	if len(acc.PassHash) == 0 {
		return 0, fmt.Errorf("%s: empty credential hash", op)
	}
	acc.Secret, acc.SecretActive = "", false

	id, err := s.insertAccount(ctx, acc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) SaveInvitation(ctx context.Context, acc models.Account) (int64, error) {
	const op = "storage.postgres.SaveInvitation"

	if acc.Secret == "" {
		return 0, fmt.Errorf("%s: empty secret", op)
	}
	acc.PassHash, acc.SecretActive = nil, true

	id, err := s.insertAccount(ctx, acc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) insertAccount(ctx context.Context, acc models.Account) (int64, error) {
	var id int64

	err := s.pool.QueryRow(ctx, `
		INSERT INTO accounts (
			public_id, identifier, partition, role, name, surname,
			pass_hash, secret_code, secret_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`,
		acc.PublicID,
		acc.Identifier,
		acc.Partition,
		acc.Role,
		acc.Profile.Name,
		acc.Profile.Surname,
		nullBytes(acc.PassHash),
		nullIfEmpty(acc.Secret),
		acc.SecretActive,
		acc.CreatedAt,
		acc.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrAccountExists
		}
		return 0, err
	}

	return id, nil
}

func (s *Storage) AccountByPublicID(ctx context.Context, publicID string) (models.Account, error) {
	const op = "storage.postgres.AccountByPublicID"

	acc, err := scanAccount(s.pool.QueryRow(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE public_id = $1", publicID))
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}
	return acc, nil
}

func (s *Storage) AccountByIdentifier(ctx context.Context, identifier, partition string) (models.Account, error) {
	const op = "storage.postgres.AccountByIdentifier"

	acc, err := scanAccount(s.pool.QueryRow(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE identifier = $1 AND partition = $2",
		identifier, partition))
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}
	return acc, nil
}

func (s *Storage) AccountsByRole(ctx context.Context, role, partition, filter string) ([]string, error) {
	const op = "storage.postgres.AccountsByRole"

	query := "SELECT public_id FROM accounts WHERE role = $1 AND partition = $2"
	args := []any{role, partition}
	if filter != "" {
		query += ` AND (identifier ILIKE $3 OR name ILIKE $3 OR surname ILIKE $3)`
		args = append(args, "%"+escapeLike(filter)+"%")
	}
	query += " ORDER BY id"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}

func (s *Storage) ActivateInvitation(ctx context.Context, accountID int64, passHash []byte, now time.Time) error {
	const op = "storage.postgres.ActivateInvitation"

	tag, err := s.pool.Exec(ctx, `
		UPDATE accounts
		SET pass_hash = $1, secret_active = FALSE, updated_at = $2
		WHERE id = $3 AND pass_hash IS NULL AND secret_active
	`, passHash, now, accountID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrStateConflict)
	}

	return nil
}

func (s *Storage) SetSecret(ctx context.Context, publicID, secret string, now time.Time) error {
	const op = "storage.postgres.SetSecret"

	tag, err := s.pool.Exec(ctx, `
		UPDATE accounts
		SET secret_code = $1, secret_active = TRUE, updated_at = $2
		WHERE public_id = $3
	`, secret, now, publicID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrAccountNotFound)
	}

	return nil
}

func (s *Storage) UpdatePassword(ctx context.Context, publicID string, passHash []byte, now time.Time) error {
	const op = "storage.postgres.UpdatePassword"

	tag, err := s.pool.Exec(ctx, `
		UPDATE accounts
		SET pass_hash = $1, secret_active = FALSE, updated_at = $2
		WHERE public_id = $3
	`, passHash, now, publicID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrAccountNotFound)
	}

	return nil
}

const sessionColumns = "id, owner, token_hash, fingerprint, user_agent, expires_at, created_at"

func (s *Storage) SessionsByOwner(ctx context.Context, owner string) ([]models.RefreshSession, error) {
	const op = "storage.postgres.SessionsByOwner"

	rows, err := s.pool.Query(ctx,
		"SELECT "+sessionColumns+" FROM refresh_sessions WHERE owner = $1 ORDER BY id", owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sessions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RefreshSession, error) {
		return scanSession(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sessions == nil {
		sessions = []models.RefreshSession{}
	}

	return sessions, nil
}

func (s *Storage) SessionByToken(ctx context.Context, tokenHash, fingerprint string) (models.RefreshSession, error) {
	const op = "storage.postgres.SessionByToken"

	sess, err := scanSession(s.pool.QueryRow(ctx,
		"SELECT "+sessionColumns+" FROM refresh_sessions WHERE token_hash = $1 AND fingerprint = $2",
		tokenHash, fingerprint))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RefreshSession{}, fmt.Errorf("%s: %w", op, storage.ErrSessionNotFound)
		}
		return models.RefreshSession{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

func (s *Storage) SaveSession(ctx context.Context, sess models.RefreshSession) (int64, error) {
	const op = "storage.postgres.SaveSession"

	id, err := insertSession(ctx, s.pool, sess)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) DeleteSession(ctx context.Context, owner, fingerprint string) error {
	const op = "storage.postgres.DeleteSession"

	_, err := s.pool.Exec(ctx,
		"DELETE FROM refresh_sessions WHERE owner = $1 AND fingerprint = $2", owner, fingerprint)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RotateSession deletes oldID and inserts next inside one transaction.
// Concurrent rotations of the same session serialize on the row lock taken
// by DELETE; the loser sees zero rows and gets storage.ErrSessionNotFound.
func (s *Storage) RotateSession(ctx context.Context, oldID int64, next models.RefreshSession) (int64, error) {
	const op = "storage.postgres.RotateSession"

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, "DELETE FROM refresh_sessions WHERE id = $1", oldID)
	if err != nil {
		return 0, fmt.Errorf("%s: delete: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrSessionNotFound)
	}

	id, err := insertSession(ctx, tx, next)
	if err != nil {
		return 0, fmt.Errorf("%s: insert: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return id, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertSession(ctx context.Context, q querier, sess models.RefreshSession) (int64, error) {
	var id int64

	err := q.QueryRow(ctx, `
		INSERT INTO refresh_sessions (owner, token_hash, fingerprint, user_agent, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		sess.Owner,
		sess.TokenHash,
		sess.Fingerprint,
		sess.UserAgent,
		sess.ExpiresAt.UnixMilli(),
		sess.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrSessionExists
		}
		return 0, err
	}

	return id, nil
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var acc models.Account

	err := row.Scan(
		&acc.ID,
		&acc.PublicID,
		&acc.Identifier,
		&acc.Partition,
		&acc.Role,
		&acc.Profile.Name,
		&acc.Profile.Surname,
		&acc.PassHash,
		&acc.Secret,
		&acc.SecretActive,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Account{}, storage.ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, err
	}

	acc.CreatedAt = acc.CreatedAt.UTC()
	acc.UpdatedAt = acc.UpdatedAt.UTC()

	return acc, nil
}

func scanSession(row pgx.Row) (models.RefreshSession, error) {
	var (
		sess      models.RefreshSession
		expiresAt int64
	)

	err := row.Scan(
		&sess.ID,
		&sess.Owner,
		&sess.TokenHash,
		&sess.Fingerprint,
		&sess.UserAgent,
		&expiresAt,
		&sess.CreatedAt,
	)
	if err != nil {
		return models.RefreshSession{}, err
	}

	sess.ExpiresAt = time.UnixMilli(expiresAt).UTC()
	sess.CreatedAt = sess.CreatedAt.UTC()

	return sess, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
