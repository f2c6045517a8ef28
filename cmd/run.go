package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wordwise-play/wordwise/internal/app"
	"github.com/wordwise-play/wordwise/internal/catalog"
	"github.com/wordwise-play/wordwise/internal/config"
	"github.com/wordwise-play/wordwise/internal/logging"
	"github.com/wordwise-play/wordwise/internal/session"
	"github.com/wordwise-play/wordwise/internal/store"
)

// deps bundles everything a command needs after config has been resolved.
type deps struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog catalog.Catalog
	prefs   store.PreferenceRepo

	closers []func() error
}

// Close releases the store and flushes the logger.
func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG location.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func loadCatalog(cfg config.Config) (catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Default()
}

// openPrefs opens the preference store, or an in-memory one when the
// database is disabled. The returned func closes whatever was opened.
func openPrefs(cfg config.Config) (store.PreferenceRepo, func() error, error) {
	if cfg.SkipDB {
		return store.NewMemoryPreferences(), func() error { return nil }, nil
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st.PreferenceRepo(), st.Close, nil
}

// buildDeps resolves config, logger, catalog and preference store.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	d := &deps{cfg: cfg, logger: logger}
	d.closers = append(d.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	cat, err := loadCatalog(cfg)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	d.catalog = cat

	prefs, closePrefs, err := openPrefs(cfg)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.prefs = prefs
	d.closers = append(d.closers, closePrefs)

	return d, nil
}

// runApp builds dependencies and launches the TUI. When groups is not
// empty the session starts right away and the landing and setup screens
// are skipped.
func runApp(cmd *cobra.Command, groups []string) error {
	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	var ids []catalog.GroupID
	if len(groups) > 0 {
		ids, err = parseGroups(d.catalog, groups, d.cfg.MaxGroups)
		if err != nil {
			return err
		}
	}

	machine := newMachine(cmd.Context(), d, ids)
	d.logger.Info("starting tui",
		zap.Int("catalog_groups", len(d.catalog.List())),
		zap.Bool("direct_start", len(ids) > 0))

	return app.Run(app.Options{
		Machine:   machine,
		MaxGroups: d.cfg.MaxGroups,
	})
}

func newMachine(ctx context.Context, d *deps, ids []catalog.GroupID) *session.Machine {
	machine := session.NewMachine(ctx, d.catalog, d.prefs, session.WithLogger(d.logger))
	if len(ids) > 0 {
		machine.Dispatch(session.SetGroups{IDs: ids})
		machine.Dispatch(session.StartSession{})
	}
	return machine
}
