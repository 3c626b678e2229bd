package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/clipper/internal/cliphist"
	"github.com/five82/clipper/internal/clipboard"
	"github.com/five82/clipper/internal/config"
	"github.com/five82/clipper/internal/popup"
	"github.com/five82/clipper/internal/prefs"
	"github.com/five82/clipper/internal/runner"
	"github.com/five82/clipper/internal/state"
	"github.com/five82/clipper/internal/ui"
)

// Options configure the clipper application.
type Options struct {
	Config    config.Config
	PrefsPath string // empty uses default ~/.config/clipper/prefs.toml
	Logger    *slog.Logger
}

// NewHistory builds the cliphist client described by cfg, including the
// clipboard backend used for copies.
func NewHistory(cfg config.Config) (*cliphist.Client, error) {
	r := runner.New(cfg.CommandTimeout)

	writer, err := clipboard.New(cfg.ClipboardBackend, r, cfg.CopyCommand)
	if err != nil {
		return nil, fmt.Errorf("init clipboard: %w", err)
	}
	return newClient(cfg, r, writer)
}

// newClient builds the cliphist client; writer is nil for read-only use.
func newClient(cfg config.Config, r runner.Runner, writer cliphist.Writer) (*cliphist.Client, error) {
	commands := cliphist.Commands{
		List:   cfg.ListCommand,
		Decode: cfg.DecodeCommand,
		Delete: cfg.DeleteCommand,
		Wipe:   cfg.WipeCommand,
	}
	client, err := cliphist.NewClient(r, commands, cfg.MaxItems, writer)
	if err != nil {
		return nil, fmt.Errorf("init cliphist client: %w", err)
	}
	return client, nil
}

// Run shows the popup and blocks until it closes and every command it
// issued has finished.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	history, err := NewHistory(cfg)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath, cfg.Theme)

	store := &state.Store{}
	ctrl := popup.New(popup.Options{
		Context:       ctx,
		History:       history,
		Store:         store,
		Timings:       popup.DefaultTimings(),
		FailurePolicy: popup.FailurePolicy(cfg.FailurePolicy),
		Logger:        logger,
	})
	defer ctrl.Close()

	logger.Debug("starting popup",
		"max_items", cfg.MaxItems,
		"clipboard_backend", cfg.ClipboardBackend,
		"theme", userPrefs.Theme,
	)

	uiOpts := ui.Options{
		Controller:    ctrl,
		ThemeName:     userPrefs.Theme,
		PrefsPath:     opts.PrefsPath,
		PreviewLength: cfg.PreviewLength,
		Logger:        logger,
	}
	return ui.Run(uiOpts)
}

// List runs one listing outside the popup and applies query like the
// search box does. No clipboard backend is initialised.
func List(ctx context.Context, cfg config.Config, query string) ([]cliphist.Entry, error) {
	history, err := newClient(cfg, runner.New(cfg.CommandTimeout), nil)
	if err != nil {
		return nil, err
	}
	entries, err := history.List(ctx)
	if err != nil {
		return nil, err
	}
	return state.Filter(entries, query), nil
}
