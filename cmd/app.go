package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/example/hotel-reservations/internal/application/usecases"
	"github.com/example/hotel-reservations/internal/catalog"
	"github.com/example/hotel-reservations/internal/config"
	"github.com/example/hotel-reservations/internal/db"
	"github.com/example/hotel-reservations/internal/migrate"
	"github.com/example/hotel-reservations/internal/store"
)

// app is the store handle plus the workflows built on it. Every command opens
// one, uses it and closes it before returning.
type app struct {
	cfg  config.Config
	db   *db.DB
	repo *store.Repo
}

// openApp loads configuration, opens the store, applies the schema and seeds
// the catalog. Any failure here is fatal for the command.
func openApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.DatabasePath = opts.dbPath
	}

	d, err := db.Open(ctx, cfg.DatabasePath, cfg.DBTimeout)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DatabasePath, err)
	}

	if err := migrate.Up(ctx, d); err != nil {
		return nil, errors.Join(fmt.Errorf("schema: %w", err), d.Close())
	}

	repo := store.NewRepo(d)
	if err := repo.InTx(ctx, func(tx *store.Repo) error { return catalog.Seed(ctx, tx) }); err != nil {
		return nil, errors.Join(fmt.Errorf("seed catalog: %w", err), d.Close())
	}

	return &app{cfg: cfg, db: d, repo: repo}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		log.Printf("close store: %v", err)
	}
}

func (a *app) book() usecases.BookReservation {
	return usecases.BookReservation{Store: a.repo}
}

func (a *app) admin() usecases.AdminService {
	return usecases.AdminService{Secret: a.cfg.AdminSecret, Reservations: a.repo}
}
