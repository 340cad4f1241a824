package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"plantmate/internal/config"
	"plantmate/internal/model"
	"plantmate/internal/pm"
	"plantmate/internal/remote"
	"plantmate/internal/store"
)

// PMApp is the application layer between the CLI and PlantService.
// It constructs all dependencies from config, exposes high-level operations,
// and manages the store lifecycle on Close.
type PMApp struct {
	cfg     *config.Config
	store   pm.Store
	fetcher pm.Fetcher
	service *pm.PlantService
	logFile *os.File
}

// NewPMApp creates a fully wired PMApp from the given config.
// operation identifies the CLI command being run (e.g. "AddSpace", "Suggest").
// The caller must call Close when done.
func NewPMApp(cfg *config.Config, operation string) (*PMApp, error) {
	st, err := store.NewStoreFromConfig(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	fetcher, err := remote.NewFetcherFromConfig(context.Background(), cfg.Remote, st)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating remote fetcher: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	log := &slogAdapter{l: logger.With("op", operation)}
	svc := pm.NewPlantService(st, fetcher, pm.NewEngine(pm.DefaultWeights()), log, pm.RealClock{}, pm.UUIDGenerator{})

	return &PMApp{
		cfg:     cfg,
		store:   st,
		fetcher: fetcher,
		service: svc,
		logFile: logFile,
	}, nil
}

// Service exposes the underlying PlantService for the CLI commands.
func (a *PMApp) Service() *pm.PlantService { return a.service }

// Login authenticates against the backend and persists the session token and
// profile in the local store. Only the HTTP remote supports login.
func (a *PMApp) Login(ctx context.Context, email, password string) (model.User, error) {
	hf, ok := a.fetcher.(*remote.HTTPFetcher)
	if !ok {
		return model.User{}, fmt.Errorf("login requires an http remote")
	}

	token, user, err := hf.Login(ctx, email, password)
	if err != nil {
		return model.User{}, err
	}

	if err := pm.WriteValue(a.store, pm.KeyToken, token); err != nil {
		return model.User{}, fmt.Errorf("storing token: %w", err)
	}
	if err := pm.WriteValue(a.store, pm.KeyUser, user); err != nil {
		return model.User{}, fmt.Errorf("storing profile: %w", err)
	}
	return user, nil
}

// Logout removes the stored session token and profile.
func (a *PMApp) Logout() error {
	if err := a.store.Delete(pm.KeyToken); err != nil {
		return fmt.Errorf("removing token: %w", err)
	}
	if err := a.store.Delete(pm.KeyUser); err != nil {
		return fmt.Errorf("removing profile: %w", err)
	}
	return nil
}

// Close closes the store and the log file.
func (a *PMApp) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	return firstErr
}
