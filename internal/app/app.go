package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/reel/internal/catalog"
	"github.com/five82/reel/internal/config"
	"github.com/five82/reel/internal/favorites"
	"github.com/five82/reel/internal/logging"
	"github.com/five82/reel/internal/prefs"
	"github.com/five82/reel/internal/ui"
)

// Options configure the reel application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/reel/config.toml
	PrefsPath  string // empty uses default ~/.config/reel/prefs.toml
}

// Run boots the reel TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closeLog, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := ui.Run(uiOpts); err != nil {
		uiOpts.Logger.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setup loads config, logging, prefs and the catalog, and returns the UI
// options with a fresh favorites store. The returned func closes the log sink.
func setup(ctx context.Context, opts Options) (ui.Options, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		return ui.Options{}, nil, err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	movies, err := catalog.Load()
	if err != nil {
		closeLog()
		return ui.Options{}, nil, fmt.Errorf("load catalog: %w", err)
	}

	logger.Info("reel starting",
		zap.Int("movies", movies.Len()),
		zap.String("theme", userPrefs.Theme),
	)

	return ui.Options{
		Context:   ctx,
		Catalog:   movies,
		Favorites: favorites.New(favorites.WithLogger(logger)),
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}, closeLog, nil
}
