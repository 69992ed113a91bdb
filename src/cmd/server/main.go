package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/http/controller"
	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/http/middleware"
	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/http/router"
	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/repository/implementations"
	"github.com/Deepanshipatil/Banking-application/src/internal/config"
	"github.com/Deepanshipatil/Banking-application/src/internal/logger"
	"github.com/Deepanshipatil/Banking-application/src/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := implementations.Open(startupCtx, cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	migrations, err := implementations.Migrations(cfg.DBDriver, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("load migrations: %v", err)
	}
	if err := implementations.RunMigrations(startupCtx, db, migrations); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	numbers, err := usecase.NewAccountNumberGenerator(cfg.AccountNumberDigits)
	if err != nil {
		log.Fatalf("account number generator: %v", err)
	}
	accountService := usecase.NewAccountService(
		implementations.NewAccountRepository(db),
		numbers,
		cfg.AccountNumberAttempts,
		cfg.PasswordHashCost,
	)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: router.New(
			controller.NewAccountController(accountService),
			middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", logger.Fields{"addr": cfg.HTTPAddr, "driver": cfg.DBDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("http server shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
