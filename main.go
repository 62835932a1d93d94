package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	appPayment "github.com/mfcastilho/payment-gateway-go/internal/application/payment"
	domain "github.com/mfcastilho/payment-gateway-go/internal/domain/payment"
	httptransport "github.com/mfcastilho/payment-gateway-go/internal/infrastructure/http"
	"github.com/mfcastilho/payment-gateway-go/internal/infrastructure/id"
	"github.com/mfcastilho/payment-gateway-go/internal/infrastructure/memory"
	"github.com/mfcastilho/payment-gateway-go/internal/infrastructure/postgres"
	"github.com/mfcastilho/payment-gateway-go/internal/infrastructure/provider"
	"github.com/mfcastilho/payment-gateway-go/internal/pkg/config"
	"github.com/mfcastilho/payment-gateway-go/internal/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.MustNewLogger(cfg.ServiceName, cfg.Env)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	repo, err := buildRepository(cfg)
	if err != nil {
		logger.Fatal("store_init_failed", zap.String("store", cfg.Store), zap.Error(err))
	}

	gateway := provider.NewGateway(cfg.ProviderURL, cfg.ProviderTimeout, logger)
	idGenerator := id.NewUUIDGenerator()

	initiate := appPayment.NewInitiateUseCase(gateway, repo, idGenerator, logger)
	checkStatus := appPayment.NewCheckStatusUseCase(gateway, repo, logger)

	handler := httptransport.NewHandler(initiate, checkStatus)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http_server_start",
			zap.String("addr", server.Addr),
			zap.String("store", cfg.Store),
			zap.String("provider_url", cfg.ProviderURL),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_server_shutdown_error", zap.Error(err))
	} else {
		logger.Info("http_server_stopped")
	}
}

func buildRepository(cfg *config.Config) (domain.Repository, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewPaymentRepository(db), nil
	default:
		return memory.NewPaymentRepository(), nil
	}
}
