// Package bootstrap is the composition root: config → logger → storage
// provider → store. The CLI calls Build once and works against the returned
// handle; tests construct their own store with a memory provider instead.
package bootstrap

import (
	"log/slog"
	"os"
	"path/filepath"

	"barber-agenda/internal/infra/kv"
	"barber-agenda/internal/pkg/clock"
	"barber-agenda/internal/pkg/config"
	"barber-agenda/internal/pkg/errs"
	"barber-agenda/internal/pkg/ident"
	"barber-agenda/internal/store"
)

type App struct {
	Store  *store.Store
	Logger *slog.Logger
	Clock  clock.Clock

	closer func() error
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

func Build(cfg config.Config) (*App, error) {
	logger := NewLogger(cfg.Log)

	kvStore, closer, err := openKV(cfg.Storage)
	if err != nil {
		return nil, err
	}

	clk := clock.NewRealClock()
	st, err := store.New(kvStore, clk, ident.NewUUIDGenerator(), logger)
	if err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, err
	}

	return &App{Store: st, Logger: logger, Clock: clk, closer: closer}, nil
}

func NewLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func openKV(cfg config.StorageConfig) (kv.Store, func() error, error) {
	switch cfg.Backend {
	case "memory":
		return kv.NewMemory(), nil, nil
	case "file":
		f, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return f, nil, nil
	case "bolt":
		b, err := kv.OpenBolt(filepath.Join(cfg.DataDir, cfg.BoltFile))
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	default:
		return nil, nil, errs.Newf("unknown storage backend %q", cfg.Backend)
	}
}
