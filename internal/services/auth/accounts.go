package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"authsvc/internal/domain/models"
	"authsvc/internal/storage"
)

func (a *Auth) AccountInfo(ctx context.Context, publicID string) (models.Account, error) {
	const op = "auth.AccountInfo"
	log := a.log.With(
		slog.String("op", op),
		slog.String("public_id", publicID),
	)

	acc, err := a.accounts.AccountByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			log.Info("account not found")
			return models.Account{}, fmt.Errorf("%s: %w", op, ErrAccountNotFound)
		}
		return models.Account{}, storageFailure(log, op, "failed to get account", err)
	}

	return acc, nil
}

// ListAccounts returns public ids of accounts holding role in partition,
// optionally narrowed by a text filter over identifier and names.
func (a *Auth) ListAccounts(ctx context.Context, role, partition, filter string) ([]string, error) {
	const op = "auth.ListAccounts"
	log := a.log.With(
		slog.String("op", op),
		slog.String("role", role),
		slog.String("partition", partition),
	)

	ids, err := a.accounts.AccountsByRole(ctx, role, partition, filter)
	if err != nil {
		return nil, storageFailure(log, op, "failed to list accounts", err)
	}

	return ids, nil
}
