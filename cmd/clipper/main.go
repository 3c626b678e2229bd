// clipper: clipboard history popup for cliphist.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "clipper: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clipper",
		Short: "Clipboard history popup",
		Long: `clipper shows the cliphist clipboard history in a searchable popup.
Bind "clipper" to a global hotkey that opens a floating terminal.

  enter    copy the selected entry and close
  ctrl+d   delete the selected entry
  ctrl+w   clear the whole history (press twice)
  ctrl+t   cycle the colour theme
  esc      close

Config file search order (first found wins):
  path supplied via --config
  $HOME/.config/clipper/config.toml

All settings can also be given as CLIPPER_<KEY> env vars, e.g.
CLIPPER_MAX_ITEMS=100.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPopup,
	}

	addConfigFlag(root)
	addLoggingFlags(root)
	addPopupFlags(root)

	root.AddCommand(
		newPopupCmd(),
		newListCmd(),
		newLogsCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clipper %s\n", Version)
		},
	}
}
