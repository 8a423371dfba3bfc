package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/fystack/contract-gateway/internal/api"
	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/internal/service"
	"github.com/fystack/contract-gateway/pkg/common/config"
	"github.com/fystack/contract-gateway/pkg/common/logger"
	"github.com/fystack/contract-gateway/pkg/events"
	"github.com/fystack/contract-gateway/pkg/infra"
)

const shutdownTimeout = 10 * time.Second

func runGateway(ctx context.Context, cfg *config.Config) error {
	if cfg.Environment != config.DevEnv {
		gin.SetMode(gin.ReleaseMode)
	}

	provider, err := chain.Dial(ctx, cfg.Chain)
	if err != nil {
		return err
	}
	defer provider.Close()

	emitter := events.Nop()
	if cfg.Nats.Enabled() {
		nc, err := infra.GetNATSConnection(ctx, cfg.Nats, cfg.Environment)
		if err != nil {
			return fmt.Errorf("connect nats: %w", err)
		}
		emitter = events.NewEmitter(nc, cfg.Nats.Subject)
	}
	defer emitter.Close()

	router, err := api.NewRouter(api.RouterOptions{
		Storage:        service.NewStorageService(provider, emitter),
		Token:          service.NewTokenService(provider, emitter),
		Version:        cfg.Version,
		TrustedProxies: cfg.Server.TrustedProxies,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Gateway listening", "addr", srv.Addr, "sender", provider.Sender().Hex())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gateway")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Gateway stopped")
	return nil
}
