package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"authsvc/internal/domain/models"
	"authsvc/internal/storage"

	"github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

// New opens the SQLite database at storagePath. The schema is expected to be
// migrated already (see cmd/migrator).
func New(storagePath string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", storagePath+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// SQLite allows a single writer; one connection keeps transactions from
	// tripping over SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Close releases the database handle.
func (s *Storage) Close() error {
	return s.db.Close()
}

const accountColumns = `id, public_id, identifier, partition, role, name, surname,
	pass_hash, secret_code, secret_active, created_at, updated_at`

// SaveAccount inserts an active account: credential set, no pending secret.
func (s *Storage) SaveAccount(ctx context.Context, acc models.Account) (int64, error) {
	const op = "storage.sqlite.SaveAccount"

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

// SaveInvitation inserts an account without a credential and with an active
// one-time secret.
func (s *Storage) SaveInvitation(ctx context.Context, acc models.Account) (int64, error) {
	const op = "storage.sqlite.SaveInvitation"

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
	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO accounts (public_id, identifier, partition, role, name, surname,
			pass_hash, secret_code, secret_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx,
		acc.PublicID,
		acc.Identifier,
		acc.Partition,
		acc.Role,
		acc.Profile.Name,
		acc.Profile.Surname,
		nullBytes(acc.PassHash),
		nullString(acc.Secret),
		acc.SecretActive,
		acc.CreatedAt.UnixMilli(),
		acc.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrAccountExists
		}
		return 0, err
	}

	return res.LastInsertId()
}

func (s *Storage) AccountByPublicID(ctx context.Context, publicID string) (models.Account, error) {
	const op = "storage.sqlite.AccountByPublicID"

	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE public_id = ?", publicID)

	acc, err := scanAccount(row)
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}
	return acc, nil
}

func (s *Storage) AccountByIdentifier(ctx context.Context, identifier, partition string) (models.Account, error) {
	const op = "storage.sqlite.AccountByIdentifier"

	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE identifier = ? AND partition = ?",
		identifier, partition)

	acc, err := scanAccount(row)
	if err != nil {
		return models.Account{}, fmt.Errorf("%s: %w", op, err)
	}
	return acc, nil
}

// AccountsByRole returns public ids of accounts with role in partition. A
// non-empty filter narrows the result to identifiers or names containing it.
func (s *Storage) AccountsByRole(ctx context.Context, role, partition, filter string) ([]string, error) {
	const op = "storage.sqlite.AccountsByRole"

	query := "SELECT public_id FROM accounts WHERE role = ? AND partition = ?"
	args := []any{role, partition}
	if filter != "" {
		query += " AND (identifier LIKE ? ESCAPE '\\' OR name LIKE ? ESCAPE '\\' OR surname LIKE ? ESCAPE '\\')"
		like := "%" + escapeLike(filter) + "%"
		args = append(args, like, like, like)
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// ActivateInvitation sets the credential and closes the invitation secret in
// one statement. It only touches a still-pending invitation, so a second
// activation reports storage.ErrStateConflict.
func (s *Storage) ActivateInvitation(ctx context.Context, accountID int64, passHash []byte, now time.Time) error {
	const op = "storage.sqlite.ActivateInvitation"

	res, err := s.db.ExecContext(ctx, `
		UPDATE accounts
		SET pass_hash = ?, secret_active = 0, updated_at = ?
		WHERE id = ? AND pass_hash IS NULL AND secret_active = 1`,
		passHash, now.UnixMilli(), accountID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return expectOne(op, res, storage.ErrStateConflict)
}

// SetSecret stores a fresh one-time secret and marks it active.
func (s *Storage) SetSecret(ctx context.Context, publicID, secret string, now time.Time) error {
	const op = "storage.sqlite.SetSecret"

	res, err := s.db.ExecContext(ctx, `
		UPDATE accounts
		SET secret_code = ?, secret_active = 1, updated_at = ?
		WHERE public_id = ?`,
		secret, now.UnixMilli(), publicID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return expectOne(op, res, storage.ErrAccountNotFound)
}

// UpdatePassword replaces the credential and closes any pending secret.
func (s *Storage) UpdatePassword(ctx context.Context, publicID string, passHash []byte, now time.Time) error {
	const op = "storage.sqlite.UpdatePassword"

	res, err := s.db.ExecContext(ctx, `
		UPDATE accounts
		SET pass_hash = ?, secret_active = 0, updated_at = ?
		WHERE public_id = ?`,
		passHash, now.UnixMilli(), publicID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return expectOne(op, res, storage.ErrAccountNotFound)
}

const sessionColumns = "id, owner, token_hash, fingerprint, user_agent, expires_at, created_at"

func (s *Storage) SessionsByOwner(ctx context.Context, owner string) ([]models.RefreshSession, error) {
	const op = "storage.sqlite.SessionsByOwner"

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM refresh_sessions WHERE owner = ? ORDER BY id", owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	sessions := []models.RefreshSession{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sessions, nil
}

func (s *Storage) SessionByToken(ctx context.Context, tokenHash, fingerprint string) (models.RefreshSession, error) {
	const op = "storage.sqlite.SessionByToken"

	row := s.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM refresh_sessions WHERE token_hash = ? AND fingerprint = ?",
		tokenHash, fingerprint)

	sess, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RefreshSession{}, fmt.Errorf("%s: %w", op, storage.ErrSessionNotFound)
		}
		return models.RefreshSession{}, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

// SaveSession inserts a session. A second session for the same
// (owner, fingerprint) fails with storage.ErrSessionExists.
func (s *Storage) SaveSession(ctx context.Context, sess models.RefreshSession) (int64, error) {
	const op = "storage.sqlite.SaveSession"

	id, err := insertSession(ctx, s.db, sess)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// DeleteSession removes the session for (owner, fingerprint). Deleting a
// missing session is not an error.
func (s *Storage) DeleteSession(ctx context.Context, owner, fingerprint string) error {
	const op = "storage.sqlite.DeleteSession"

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM refresh_sessions WHERE owner = ? AND fingerprint = ?", owner, fingerprint)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RotateSession deletes the session oldID and inserts next in one
// transaction. If oldID is already gone the rotation lost a race and
// storage.ErrSessionNotFound is returned.
func (s *Storage) RotateSession(ctx context.Context, oldID int64, next models.RefreshSession) (int64, error) {
	const op = "storage.sqlite.RotateSession"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "DELETE FROM refresh_sessions WHERE id = ?", oldID)
	if err != nil {
		return 0, fmt.Errorf("%s: delete: %w", op, err)
	}
	if err := expectOne(op, res, storage.ErrSessionNotFound); err != nil {
		return 0, err
	}

	id, err := insertSession(ctx, tx, next)
	if err != nil {
		return 0, fmt.Errorf("%s: insert: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return id, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertSession(ctx context.Context, db execer, sess models.RefreshSession) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO refresh_sessions (owner, token_hash, fingerprint, user_agent, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sess.Owner,
		sess.TokenHash,
		sess.Fingerprint,
		sess.UserAgent,
		sess.ExpiresAt.UnixMilli(),
		sess.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrSessionExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (models.Account, error) {
	var (
		acc       models.Account
		secret    sql.NullString
		createdAt int64
		updatedAt int64
	)

	err := row.Scan(
		&acc.ID,
		&acc.PublicID,
		&acc.Identifier,
		&acc.Partition,
		&acc.Role,
		&acc.Profile.Name,
		&acc.Profile.Surname,
		&acc.PassHash,
		&secret,
		&acc.SecretActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, storage.ErrAccountNotFound
		}
		return models.Account{}, err
	}

	acc.Secret = secret.String
	acc.CreatedAt = time.UnixMilli(createdAt).UTC()
	acc.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return acc, nil
}

func scanSession(row scanner) (models.RefreshSession, error) {
	var (
		sess      models.RefreshSession
		expiresAt int64
		createdAt int64
	)

	err := row.Scan(
		&sess.ID,
		&sess.Owner,
		&sess.TokenHash,
		&sess.Fingerprint,
		&sess.UserAgent,
		&expiresAt,
		&createdAt,
	)
	if err != nil {
		return models.RefreshSession{}, err
	}

	sess.ExpiresAt = time.UnixMilli(expiresAt).UTC()
	sess.CreatedAt = time.UnixMilli(createdAt).UTC()

	return sess, nil
}

func expectOne(op string, res sql.Result, none error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, none)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
