package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/clipper/internal/logtail"
)

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of clipper's log file",
		Args:  cobra.NoArgs,
		RunE:  runLogs,
	}
	cmd.Flags().IntP("lines", "n", 200, "number of lines to print (0 for all)")
	cmd.Flags().Bool("raw", false, "print the JSON records unformatted")
	return cmd
}

func runLogs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	n, _ := cmd.Flags().GetInt("lines")
	raw, _ := cmd.Flags().GetBool("raw")

	lines, err := logtail.Read(cfg.LogFile, n)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "no log entries in %s\n", cfg.LogFile)
		return nil
	}

	out := cmd.OutOrStdout()
	if !raw {
		lines = logtail.NewFormatter(lipgloss.NewRenderer(out)).Lines(lines)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
