package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"authsvc/internal/domain/models"
	"authsvc/internal/lib/password"
	"authsvc/internal/lib/secret"
	"authsvc/internal/lib/sl"
	"authsvc/internal/storage"
)

type LoginInput struct {
	Identifier  string
	Partition   string
	Password    string
	Fingerprint string
	UserAgent   string
}

// Login checks the password of the account identified by (identifier,
// partition) and opens a refresh session for the fingerprint.
func (a *Auth) Login(ctx context.Context, in LoginInput) (Tokens, error) {
	const op = "auth.Login"
	log := a.log.With(
		slog.String("op", op),
		slog.String("partition", in.Partition),
	)
	log.Info("login request")

	acc, err := a.accounts.AccountByIdentifier(ctx, in.Identifier, in.Partition)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			log.Warn("account not found")
			return Tokens{}, fmt.Errorf("%s: %w", op, ErrAccountNotFound)
		}
		return Tokens{}, storageFailure(log, op, "failed to get account", err)
	}

	log = log.With(slog.String("public_id", acc.PublicID))

	if err := a.hasher.Compare(acc.PassHash, in.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			log.Warn("invalid password", slog.Bool("activated", acc.Activated()))
			return Tokens{}, fmt.Errorf("%s: %w", op, ErrInvalidPassword)
		}
		return Tokens{}, internalFailure(log, op, "failed to compare password", err)
	}

	now := a.clock.Now()

	sessions, err := a.sessions.SessionsByOwner(ctx, acc.PublicID)
	if err != nil {
		return Tokens{}, storageFailure(log, op, "failed to list sessions", err)
	}

	open := sessions[:0]
	duplicate := false
	for _, s := range sessions {
		if s.Fingerprint != in.Fingerprint {
			open = append(open, s)
			continue
		}
		if !s.IsLive(now) {
			// A stale session for the same device is replaced, not counted.
			if err := a.sessions.DeleteSession(detach(ctx), s.Owner, s.Fingerprint); err != nil {
				return Tokens{}, storageFailure(log, op, "failed to purge stale session", err)
			}
			continue
		}
		open = append(open, s)
		duplicate = true
	}

	if len(open) >= a.cfg.MaxSessions {
		log.Warn("sessions limit exceeded", slog.Int("sessions", len(open)))
		return Tokens{}, fmt.Errorf("%s: %w", op, ErrSessionLimitExceeded)
	}
	if duplicate {
		log.Warn("session already exists for fingerprint")
		return Tokens{}, fmt.Errorf("%s: %w", op, ErrDuplicateSession)
	}

	refreshToken, err := a.secrets.Issue()
	if err != nil {
		return Tokens{}, internalFailure(log, op, "failed to issue refresh token", err)
	}

	sess := models.RefreshSession{
		Owner:       acc.PublicID,
		TokenHash:   secret.HashToken(refreshToken),
		Fingerprint: in.Fingerprint,
		UserAgent:   in.UserAgent,
		ExpiresAt:   now.Add(a.cfg.RefreshTTL),
		CreatedAt:   now,
	}

	if _, err := a.sessions.SaveSession(detach(ctx), sess); err != nil {
		if errors.Is(err, storage.ErrSessionExists) {
			log.Warn("session created concurrently for fingerprint")
			return Tokens{}, fmt.Errorf("%s: %w", op, ErrDuplicateSession)
		}
		return Tokens{}, storageFailure(log, op, "failed to save session", err)
	}

	accessToken, accessExp, err := a.mintAccess(acc, now)
	if err != nil {
		return Tokens{}, internalFailure(log, op, "failed to mint access token", err)
	}

	log.Info("user logged in")

	return Tokens{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: sess.ExpiresAt,
	}, nil
}

// Verify checks an access credential and binds it to a live refresh session
// with the same fingerprint. Logging out therefore invalidates credentials
// that are still correctly signed and unexpired.
func (a *Auth) Verify(ctx context.Context, accessToken, fingerprint string) (models.AccessPayload, error) {
	const op = "auth.Verify"
	log := a.log.With(slog.String("op", op))

	payload, err := a.signer.Verify(accessToken)
	if err != nil {
		log.Warn("access token is not valid", sl.Err(err))
		return models.AccessPayload{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	log = log.With(slog.String("public_id", payload.Owner))

	now := a.clock.Now()
	if payload.Expired(now) {
		log.Info("access token expired")
		return models.AccessPayload{}, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	sessions, err := a.sessions.SessionsByOwner(ctx, payload.Owner)
	if err != nil {
		return models.AccessPayload{}, storageFailure(log, op, "failed to list sessions", err)
	}

	for _, s := range sessions {
		if s.Fingerprint != fingerprint {
			continue
		}
		if s.IsLive(now) {
			return payload, nil
		}
		if err := a.sessions.DeleteSession(detach(ctx), s.Owner, s.Fingerprint); err != nil {
			log.Error("failed to purge stale session", sl.Err(err))
		}
		break
	}

	log.Info("no live session for fingerprint", slog.Int("sessions", len(sessions)))
	return models.AccessPayload{}, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
}

type RefreshInput struct {
	RefreshToken string
	Fingerprint  string
	UserAgent    string
}

// Refresh exchanges a refresh token for a new credential pair. The presented
// token is consumed: a second refresh with it fails with NotFound.
func (a *Auth) Refresh(ctx context.Context, in RefreshInput) (Tokens, error) {
	const op = "auth.Refresh"
	log := a.log.With(slog.String("op", op))
	log.Info("refresh request")

	sess, err := a.sessions.SessionByToken(ctx, secret.HashToken(in.RefreshToken), in.Fingerprint)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			log.Warn("no session to refresh")
			return Tokens{}, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
		}
		return Tokens{}, storageFailure(log, op, "failed to find session", err)
	}

	log = log.With(slog.String("public_id", sess.Owner))

	now := a.clock.Now()
	if !sess.IsLive(now) {
		if err := a.sessions.DeleteSession(detach(ctx), sess.Owner, sess.Fingerprint); err != nil {
			log.Error("failed to purge stale session", sl.Err(err))
		}
		log.Info("refresh token expired")
		return Tokens{}, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	acc, err := a.accounts.AccountByPublicID(ctx, sess.Owner)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return Tokens{}, internalFailure(log, op, "session owner does not exist", err)
		}
		return Tokens{}, storageFailure(log, op, "failed to get account", err)
	}

	refreshToken, err := a.secrets.Issue()
	if err != nil {
		return Tokens{}, internalFailure(log, op, "failed to issue refresh token", err)
	}

	userAgent := in.UserAgent
	if userAgent == "" {
		userAgent = sess.UserAgent
	}

	next := models.RefreshSession{
		Owner:       sess.Owner,
		TokenHash:   secret.HashToken(refreshToken),
		Fingerprint: sess.Fingerprint,
		UserAgent:   userAgent,
		ExpiresAt:   now.Add(a.cfg.RefreshTTL),
		CreatedAt:   now,
	}

	if _, err := a.sessions.RotateSession(detach(ctx), sess.ID, next); err != nil {
		switch {
		case errors.Is(err, storage.ErrSessionNotFound):
			log.Warn("session already rotated")
			return Tokens{}, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
		case errors.Is(err, storage.ErrSessionExists):
			log.Warn("session created concurrently for fingerprint")
			return Tokens{}, fmt.Errorf("%s: %w", op, ErrDuplicateSession)
		}
		return Tokens{}, storageFailure(log, op, "failed to rotate session", err)
	}

	accessToken, accessExp, err := a.mintAccess(acc, now)
	if err != nil {
		return Tokens{}, internalFailure(log, op, "failed to mint access token", err)
	}

	log.Info("tokens refreshed")

	return Tokens{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: next.ExpiresAt,
	}, nil
}

type LogoutInput struct {
	// AccessToken identifies the owner when it carries a valid signature.
	// Expiry is not checked, so an expired credential can still end its
	// session.
	AccessToken string
	// PublicID identifies the owner when the access token is absent or
	// not valid.
	PublicID    string
	Fingerprint string
}

// Logout deletes the session for (owner, fingerprint). It succeeds whether
// or not such a session existed.
func (a *Auth) Logout(ctx context.Context, in LogoutInput) error {
	const op = "auth.Logout"
	log := a.log.With(slog.String("op", op))

	owner := in.PublicID
	if in.AccessToken != "" {
		payload, err := a.signer.Verify(in.AccessToken)
		if err != nil {
			log.Warn("access token is not valid, falling back to public id", sl.Err(err))
		} else {
			owner = payload.Owner
		}
	}
	if owner == "" {
		return fmt.Errorf("%s: %w: owner is not set", op, ErrBadInput)
	}

	log = log.With(slog.String("public_id", owner))

	if err := a.sessions.DeleteSession(detach(ctx), owner, in.Fingerprint); err != nil {
		return storageFailure(log, op, "failed to delete session", err)
	}

	log.Info("user logged out")

	return nil
}
