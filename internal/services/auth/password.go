package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"authsvc/internal/domain/models"
	"authsvc/internal/lib/secret"
	"authsvc/internal/storage"
)

// ForgotPassword issues a fresh reset secret for the account and delivers
// it. A delivery failure does not revoke the secret.
func (a *Auth) ForgotPassword(ctx context.Context, identifier, partition, link string) error {
	const op = "auth.ForgotPassword"
	log := a.log.With(
		slog.String("op", op),
		slog.String("partition", partition),
	)
	log.Info("password forgot request")

	acc, err := a.accounts.AccountByIdentifier(ctx, identifier, partition)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			log.Warn("account not found")
			return fmt.Errorf("%s: %w", op, ErrAccountNotFound)
		}
		return storageFailure(log, op, "failed to get account", err)
	}

	log = log.With(slog.String("public_id", acc.PublicID))

	code, err := a.secrets.Issue()
	if err != nil {
		return internalFailure(log, op, "failed to issue secret", err)
	}

	resetLink, err := secretLink(link, code)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := a.accounts.SetSecret(detach(ctx), acc.PublicID, code, a.clock.Now()); err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return fmt.Errorf("%s: %w", op, ErrAccountNotFound)
		}
		return storageFailure(log, op, "failed to store secret", err)
	}

	log.Info("reset secret issued")

	a.notify(ctx, log, models.Notification{
		SourceEmail: a.cfg.SourceEmail,
		SecretCode:  code,
		Destination: acc.Identifier,
		TemplateID:  models.TemplatePasswordReset,
		Link:        resetLink,
		PublicID:    acc.PublicID,
	})

	return nil
}

// ResetPassword replaces the credential of the account when the presented
// secret matches its active reset secret, and closes the secret.
func (a *Auth) ResetPassword(ctx context.Context, publicID, candidate, newPassword string) error {
	const op = "auth.ResetPassword"
	log := a.log.With(
		slog.String("op", op),
		slog.String("public_id", publicID),
	)
	log.Info("reset password request")

	acc, err := a.accounts.AccountByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			log.Warn("account not found")
			return fmt.Errorf("%s: %w", op, ErrAccountNotFound)
		}
		return storageFailure(log, op, "failed to get account", err)
	}

	// Unlike invitation redemption, an inactive secret is expected here: any
	// account that never asked for a reset, or already used its secret, has
	// one. It is reported as InvalidSecret, not Internal.
	if !secret.Matches(acc.Secret, acc.SecretActive, candidate) {
		log.Warn("invalid reset secret", slog.Bool("secret_active", acc.SecretActive))
		return fmt.Errorf("%s: %w", op, ErrInvalidSecret)
	}

	passHash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return internalFailure(log, op, "failed to generate password hash", err)
	}

	if err := a.accounts.UpdatePassword(detach(ctx), acc.PublicID, passHash, a.clock.Now()); err != nil {
		return storageFailure(log, op, "failed to update password", err)
	}

	log.Info("password reset")

	return nil
}
