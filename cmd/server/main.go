package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arjunm-dev/cipherpost/internal/api"
	"github.com/arjunm-dev/cipherpost/internal/config"
	"github.com/arjunm-dev/cipherpost/internal/crypto"
	"github.com/arjunm-dev/cipherpost/internal/logger"
	"github.com/arjunm-dev/cipherpost/internal/repositories"
)

// @title CipherPost API
// @version 1.0
// @description Small messaging service: register a public key, send messages encrypted for a recipient, fetch messages addressed to you.
// @BasePath /
func main() {
	if err := logger.Initialize(config.Envs.LogLevel); err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	// Readiness gates on the stores: refuse to start over unknown state.
	repos, err := repositories.New(config.Envs.DataDir)
	if err != nil {
		logger.Log.Fatal("failed to load document stores", zap.Error(err))
	}

	cryptoSvc := crypto.New(config.Envs.SecretsDir)

	mux := api.SetupRouter(repos, cryptoSvc)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("starting CipherPost server",
			zap.String("port", config.Envs.Port),
			zap.String("env", config.Envs.Environment))

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger.Log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Fatal("server error", zap.Error(err))
	}
}
