package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "weightloss/internal/adapter/http"
	"weightloss/internal/adapter/memory"
	"weightloss/internal/adapter/postgres"
	"weightloss/internal/adapter/sqlite"
	"weightloss/internal/app"
	"weightloss/internal/config"
	"weightloss/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	kv, closer, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	defer func() { _ = closer.Close() }()

	ctx := context.Background()
	entries := app.NewEntryStore(kv)
	entries.Load(ctx)
	goals := app.NewGoalTracker(kv)
	goals.Load(ctx)
	settings := app.NewSettingsService(kv)
	settings.Load(ctx)
	charts := app.NewChartsService(entries)

	h := adapthttp.New(entries, goals, charts, settings, cfg.WebDir).Handler()
	srv := &http.Server{Addr: cfg.Addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s (store=%s, %d entries)", cfg.Addr, cfg.Store, entries.Len())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (domain.KVStore, io.Closer, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case config.StoreMemory:
		return memory.New(), io.NopCloser(nil), nil
	default:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	}
}
