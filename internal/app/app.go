package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/panesplit/internal/config"
	"github.com/five82/panesplit/internal/content"
	"github.com/five82/panesplit/internal/prefs"
	"github.com/five82/panesplit/internal/ui"
)

// Options configure the panesplit application.
type Options struct {
	ConfigPath     string
	PrefsPath      string // empty uses ~/.config/panesplit/prefs.toml
	LogFile        string // overrides the config's log_file
	RefreshSeconds int    // zero uses the config value
	Verbose        bool
}

// Run boots the demo until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load layout config: %w", err)
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.RefreshSeconds > 0 {
		cfg.RefreshSeconds = opts.RefreshSeconds
	}

	w, closeLog, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(w, level)
	logger.Info("starting", "panes", len(cfg.Panes), "direction", cfg.Direction)

	userPrefs := prefs.Load(opts.PrefsPath)
	interval := time.Duration(cfg.RefreshSeconds) * time.Second

	store := &content.Store{}
	watcher := content.NewWatcher(store, cfg.Files(), content.WatcherOptions{
		Interval: interval,
		Logger:   logger.With("component", "content"),
	})
	// Populate the store before the first frame.
	watcher.Refresh()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := watcher.Run(runCtx); err != nil {
			logger.Error("content watcher stopped", "error", err)
		}
	}()

	err = ui.Run(runCtx, ui.Options{
		Config:    cfg,
		Store:     store,
		Refresh:   interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("exiting")
	return nil
}
