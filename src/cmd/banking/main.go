package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/repository/implementations"
	"github.com/Deepanshipatil/Banking-application/src/internal/config"
	"github.com/Deepanshipatil/Banking-application/src/internal/logger"
	"github.com/Deepanshipatil/Banking-application/src/internal/shell"
	"github.com/Deepanshipatil/Banking-application/src/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()
	logger.SetOutput(logFile)

	db, err := implementations.Open(ctx, cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	migrations, err := implementations.Migrations(cfg.DBDriver, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("load migrations: %v", err)
	}
	if err := implementations.RunMigrations(ctx, db, migrations); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	numbers, err := usecase.NewAccountNumberGenerator(cfg.AccountNumberDigits)
	if err != nil {
		log.Fatalf("account number generator: %v", err)
	}
	service := usecase.NewAccountService(
		implementations.NewAccountRepository(db),
		numbers,
		cfg.AccountNumberAttempts,
		cfg.PasswordHashCost,
	)

	var opts []shell.Option
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		opts = append(opts, shell.WithPasswordReader(func() (string, error) {
			password, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stdout)
			return string(password), err
		}))
	}

	if err := shell.New(os.Stdin, os.Stdout, service, opts...).Run(ctx); err != nil {
		log.Fatalf("shell: %v", err)
	}
}

// openLog keeps log lines off the interactive prompt. Without LOG_FILE they
// are discarded.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
