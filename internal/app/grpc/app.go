package grpcapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	authgrpc "authsvc/internal/grpc/auth"
	"authsvc/internal/lib/metrics"
	"authsvc/internal/lib/sl"

	"google.golang.org/grpc"
)

const metricsShutdownTimeout = 5 * time.Second

type Options struct {
	Port    int
	Timeout time.Duration
	// MetricsPort of 0 disables the metrics endpoint.
	MetricsPort int
}

type App struct {
	logger        *slog.Logger
	gRPCServer    *grpc.Server
	metricsServer *http.Server
	port          int
}

func New(
	logger *slog.Logger,
	authService authgrpc.Auth,
	m *metrics.Metrics,
	opts Options,
) *App {
	gRPCServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		m.UnaryServerInterceptor(),
		timeoutInterceptor(opts.Timeout),
	))
	authgrpc.Register(gRPCServer, authService)

	var metricsServer *http.Server
	if opts.MetricsPort != 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.MetricsPort),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return &App{
		logger:        logger,
		gRPCServer:    gRPCServer,
		metricsServer: metricsServer,
		port:          opts.Port,
	}
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "grpcapp.Run"

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", a.port))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return a.Serve(listener)
}

// Serve runs the gRPC server on lis until Stop is called.
func (a *App) Serve(lis net.Listener) error {
	const op = "grpcapp.Serve"

	log := a.logger.With(slog.String("op", op))

	if a.metricsServer != nil {
		go func() {
			log.Info("metrics server is running", slog.String("address", a.metricsServer.Addr))
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", sl.Err(err))
			}
		}()
	}

	log.Info("gRPC server is running", slog.String("address", lis.Addr().String()))

	if err := a.gRPCServer.Serve(lis); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Stop() {
	const op = "grpcapp.Stop"
	log := a.logger.With(slog.String("op", op))
	log.Info("stopping gRPC server", slog.Int("port", a.port))

	a.gRPCServer.GracefulStop()

	if a.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			log.Error("failed to stop metrics server", sl.Err(err))
		}
	}
}

// timeoutInterceptor bounds every unary call by d. Zero means no bound.
func timeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if d <= 0 {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return handler(ctx, req)
	}
}
