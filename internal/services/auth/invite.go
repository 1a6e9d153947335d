package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"authsvc/internal/domain/models"
	"authsvc/internal/lib/secret"
	"authsvc/internal/storage"

	"github.com/google/uuid"
)

type InviteInput struct {
	// AccessToken belongs to the inviting account, which must hold the
	// elevated role. The invitation is created in its partition.
	AccessToken string
	Identifier  string
	Profile     models.Profile
	Role        string
	Link        string
}

// Invitation is the pending account created by Invite.
type Invitation struct {
	PublicID  string
	Partition string
	Secret    string
	Link      string
}

// Invite creates an account without a credential and delivers its one-time
// secret to the invitee.
func (a *Auth) Invite(ctx context.Context, in InviteInput) (Invitation, error) {
	const op = "auth.Invite"
	log := a.log.With(slog.String("op", op))
	log.Info("invite request")

	// Any failure to prove elevated rights is Forbidden.
	payload, err := a.signer.Verify(in.AccessToken)
	if err != nil {
		log.Warn("access token is not valid")
		return Invitation{}, fmt.Errorf("%s: %w: invalid access token", op, ErrForbidden)
	}

	now := a.clock.Now()
	if payload.Expired(now) {
		log.Info("access token expired")
		return Invitation{}, fmt.Errorf("%s: %w: access token expired", op, ErrForbidden)
	}

	log = log.With(slog.String("moderator", payload.Owner))

	if payload.Role != a.cfg.ElevatedRole {
		log.Warn("caller may not create invitations", slog.String("role", payload.Role))
		return Invitation{}, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	moderator, err := a.accounts.AccountByPublicID(ctx, payload.Owner)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			log.Warn("moderator account not found")
			return Invitation{}, fmt.Errorf("%s: %w", op, ErrAccountNotFound)
		}
		return Invitation{}, storageFailure(log, op, "failed to get moderator", err)
	}

	partition := moderator.Partition

	_, err = a.accounts.AccountByIdentifier(ctx, in.Identifier, partition)
	switch {
	case err == nil:
		log.Warn("account already exists")
		return Invitation{}, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	case !errors.Is(err, storage.ErrAccountNotFound):
		return Invitation{}, storageFailure(log, op, "failed to get account", err)
	}

	role := in.Role
	if role == "" {
		role = a.cfg.DefaultRole
	}
	if role == a.cfg.ElevatedRole {
		log.Warn("elevated role may not be granted by invitation")
		return Invitation{}, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	code, err := a.secrets.Issue()
	if err != nil {
		return Invitation{}, internalFailure(log, op, "failed to issue secret", err)
	}

	link, err := secretLink(in.Link, code)
	if err != nil {
		return Invitation{}, fmt.Errorf("%s: %w", op, err)
	}

	inv := models.Account{
		PublicID:   uuid.NewString(),
		Identifier: in.Identifier,
		Partition:  partition,
		Role:       role,
		Profile:    in.Profile,
		Secret:     code,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := a.accounts.SaveInvitation(detach(ctx), inv); err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			log.Warn("account created concurrently")
			return Invitation{}, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return Invitation{}, storageFailure(log, op, "failed to save invitation", err)
	}

	log.Info("invitation created", slog.String("public_id", inv.PublicID), slog.String("role", role))

	a.notify(ctx, log, models.Notification{
		SourceEmail: a.cfg.SourceEmail,
		SecretCode:  code,
		Destination: in.Identifier,
		TemplateID:  models.TemplateRegistrationInvite,
		Link:        link,
		PublicID:    inv.PublicID,
	})

	return Invitation{
		PublicID:  inv.PublicID,
		Partition: partition,
		Secret:    code,
		Link:      link,
	}, nil
}

type RegisterInput struct {
	Identifier string
	Partition  string
	Password   string
	Profile    models.Profile
	// InvitationSecret redeems a pending invitation when set. Without it a
	// new active account is created.
	InvitationSecret string
}

// Register creates an active account, or activates a pending invitation
// when an invitation secret is presented. It returns the account's public id.
func (a *Auth) Register(ctx context.Context, in RegisterInput) (string, error) {
	if in.InvitationSecret != "" {
		return a.redeem(ctx, in)
	}

	const op = "auth.Register"
	log := a.log.With(
		slog.String("op", op),
		slog.String("partition", in.Partition),
	)
	log.Info("register request")

	_, err := a.accounts.AccountByIdentifier(ctx, in.Identifier, in.Partition)
	switch {
	case err == nil:
		log.Warn("account already exists")
		return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	case !errors.Is(err, storage.ErrAccountNotFound):
		return "", storageFailure(log, op, "failed to get account", err)
	}

	passHash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return "", internalFailure(log, op, "failed to generate password hash", err)
	}

	now := a.clock.Now()
	acc := models.Account{
		PublicID:   uuid.NewString(),
		Identifier: in.Identifier,
		Partition:  in.Partition,
		Role:       a.cfg.DefaultRole,
		Profile:    in.Profile,
		PassHash:   passHash,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := a.accounts.SaveAccount(detach(ctx), acc); err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			log.Warn("account created concurrently")
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", storageFailure(log, op, "failed to save account", err)
	}

	log.Info("account registered", slog.String("public_id", acc.PublicID))

	return acc.PublicID, nil
}

func (a *Auth) redeem(ctx context.Context, in RegisterInput) (string, error) {
	const op = "auth.RedeemInvitation"
	log := a.log.With(
		slog.String("op", op),
		slog.String("partition", in.Partition),
	)
	log.Info("redeem request")

	acc, err := a.accounts.AccountByIdentifier(ctx, in.Identifier, in.Partition)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			log.Warn("no invitation for account")
			return "", fmt.Errorf("%s: %w", op, ErrNoInvitation)
		}
		return "", storageFailure(log, op, "failed to get account", err)
	}

	log = log.With(slog.String("public_id", acc.PublicID))

	if acc.Activated() {
		log.Warn("invitation already redeemed")
		return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}
	if !acc.SecretActive {
		return "", internalFailure(log, op, "pending invitation without active secret",
			errors.New("inconsistent account state"))
	}
	if !secret.Matches(acc.Secret, acc.SecretActive, in.InvitationSecret) {
		log.Warn("invalid invitation secret")
		return "", fmt.Errorf("%s: %w", op, ErrInvalidSecret)
	}

	passHash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return "", internalFailure(log, op, "failed to generate password hash", err)
	}

	if err := a.accounts.ActivateInvitation(detach(ctx), acc.ID, passHash, a.clock.Now()); err != nil {
		if errors.Is(err, storage.ErrStateConflict) {
			log.Warn("invitation redeemed concurrently")
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", storageFailure(log, op, "failed to activate account", err)
	}

	log.Info("invitation redeemed")

	return acc.PublicID, nil
}
