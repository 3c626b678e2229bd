package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/five82/clipper/internal/config"
	"github.com/five82/clipper/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and CLIPPER_* env var prefix. Flag names use
// dashes; they are bound to the underscore config keys.
//
// Precedence (lowest → highest): defaults → config file → CLIPPER_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "clipper"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("CLIPPER")
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == "config" {
			return
		}
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			bindErr = fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// loadConfig resolves the full configuration for cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	if err := bindViper(cmd, v); err != nil {
		return config.Config{}, err
	}
	return config.FromViper(v)
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "path to config file (overrides auto-discovery)")
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-format", "auto", "log format: auto|text|json")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug|info|warn|error")
	cmd.PersistentFlags().String("log-file", "", "popup log file (default ~/.local/state/clipper/clipper.log)")
}

// addPopupFlags adds the flags that shape the popup itself.
func addPopupFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-items", 50, "maximum number of history entries shown")
	cmd.Flags().Int("preview-length", 60, "preview width in characters before truncation")
	cmd.Flags().String("theme", "", "initial theme when none has been saved")
	cmd.Flags().String("clipboard-backend", "command", "clipboard backend: command|native")
	cmd.Flags().String("failure-policy", "silent", "command failures: silent|toast")
}

// setupStderrLogging configures slog for the non-interactive subcommands.
func setupStderrLogging(cfg config.Config) *slog.Logger {
	return logging.Setup(os.Stderr, logging.ParseFormat(cfg.LogFormat), logging.ParseLevel(cfg.LogLevel))
}
