package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/five82/clipper/internal/app"
	"github.com/five82/clipper/internal/logging"
)

func newPopupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "popup",
		Short: "Show the clipboard history popup (default)",
		Args:  cobra.NoArgs,
		RunE:  runPopup,
	}
	addPopupFlags(cmd)
	return cmd
}

func runPopup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The popup owns the terminal, so logs go to a file. Without one the
	// popup still runs, silently.
	logger := slog.New(slog.DiscardHandler)
	if f, err := logging.OpenFile(cfg.LogFile); err == nil {
		defer f.Close()
		logger = logging.Setup(f, logging.ParseFormat(cfg.LogFormat), logging.ParseLevel(cfg.LogLevel))
	}

	return app.Run(cmd.Context(), app.Options{
		Config: cfg,
		Logger: logger,
	})
}
