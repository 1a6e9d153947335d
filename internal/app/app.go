package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	grpcapp "authsvc/internal/app/grpc"
	"authsvc/internal/config"
	"authsvc/internal/lib/clock"
	"authsvc/internal/lib/jwt"
	"authsvc/internal/lib/metrics"
	"authsvc/internal/lib/password"
	"authsvc/internal/lib/secret"
	"authsvc/internal/lib/sl"
	"authsvc/internal/notifier/sender"
	"authsvc/internal/services/auth"
	"authsvc/internal/storage/mongodb"
	"authsvc/internal/storage/postgres"
	"authsvc/internal/storage/sqlite"
)

const connectTimeout = 10 * time.Second

type App struct {
	GRPCSrv *grpcapp.App

	log     *slog.Logger
	storage io.Closer
}

// store is what every backend provides.
type store interface {
	auth.AccountStore
	auth.SessionStore
	io.Closer
}

func New(log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	st, err := openStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	signer, err := jwt.NewSigner(cfg.Tokens.SigningKey)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var notifier auth.Notifier
	if cfg.Notifier.BaseURL == "" {
		log.Warn("notifier base url is empty, notifications are only logged")
		notifier = sender.NewLogOnly(log)
	} else {
		notifier = sender.New(cfg.Notifier.BaseURL, cfg.Notifier.Timeout)
	}

	authService := auth.New(
		log,
		st,
		st,
		signer,
		password.NewHasher(cfg.Hash.Cost),
		secret.NewIssuer(),
		notifier,
		clock.System(),
		auth.Config{
			AccessTTL:    cfg.Tokens.AccessTTL,
			RefreshTTL:   cfg.Tokens.RefreshTTL,
			MaxSessions:  cfg.Sessions.MaxPerAccount,
			ElevatedRole: cfg.Roles.Elevated,
			DefaultRole:  cfg.Roles.Default,
			SourceEmail:  cfg.Notifier.SourceEmail,
		},
	)

	grpcApp := grpcapp.New(log, authService, metrics.New(), grpcapp.Options{
		Port:        cfg.GRPC.Port,
		Timeout:     cfg.GRPC.Timeout,
		MetricsPort: cfg.Metrics.Port,
	})

	return &App{
		GRPCSrv: grpcApp,
		log:     log,
		storage: st,
	}, nil
}

// Stop drains the gRPC server and then closes storage.
func (a *App) Stop() {
	a.GRPCSrv.Stop()

	if err := a.storage.Close(); err != nil {
		a.log.Error("failed to close storage", sl.Err(err))
	}
}

func openStorage(cfg *config.Config) (store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Storage.Path)
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		return postgres.New(ctx, cfg.Storage.DSN)
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		return mongodb.New(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
