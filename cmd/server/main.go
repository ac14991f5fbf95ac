package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hongminglow/campus-library/internal/auth"
	"github.com/hongminglow/campus-library/internal/config"
	"github.com/hongminglow/campus-library/internal/ledger"
	"github.com/hongminglow/campus-library/internal/seed"
	"github.com/hongminglow/campus-library/internal/server"
	"github.com/hongminglow/campus-library/internal/storage"
	"github.com/hongminglow/campus-library/internal/storage/memory"
	postgres "github.com/hongminglow/campus-library/internal/storage/postgres"
	"github.com/hongminglow/campus-library/internal/workers"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	defer store.Close()

	now := time.Now()
	hash, err := auth.HashPassword(cfg.DemoPassword)
	if err != nil {
		log.Fatalf("hash demo password: %v", err)
	}
	if err := store.SeedUsers(ctx, seed.Users(hash, now)); err != nil {
		log.Fatalf("seed users: %v", err)
	}

	gen := seed.NewGenerator(rand.New(rand.NewSource(cfg.Seed)), now)
	lib, err := ledger.New(gen.Books(), seed.Loans(now),
		ledger.WithDailyRate(cfg.FineRate),
		ledger.WithSuspensionThreshold(cfg.SuspensionThreshold),
		ledger.WithLoanPeriod(cfg.LoanPeriodDays),
		ledger.WithLocation(cfg.Location),
	)
	if err != nil {
		log.Fatalf("build ledger: %v", err)
	}

	board := workers.NewNoticeBoard()
	workers.NewOverdueNotifier(lib, board, cfg.OverdueScanInterval, logger).Start(ctx)

	srv := server.New(cfg, server.Deps{
		Ledger:        lib,
		Store:         store,
		Notices:       board,
		Announcements: seed.Announcements(),
		Logger:        logger,
	})

	go func() {
		logger.Info("campus library backend listening", "addr", cfg.HTTPAddress(), "books", len(lib.Books()))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	stop()

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error", "error", err)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Development() {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// openStore uses Postgres when DATABASE_URL is set and memory otherwise.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("DATABASE_URL not set; keeping users and audit in memory")
		return memory.NewStore(), nil
	}
	pg, err := postgres.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return pg, nil
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
