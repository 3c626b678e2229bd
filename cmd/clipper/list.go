package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/clipper/internal/app"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the clipboard history",
		Long: `Print the history exactly as the popup would list it, one
"id<TAB>preview" line per entry, newest first.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().Bool("json", false, "print entries as a JSON array")
	cmd.Flags().StringP("query", "q", "", "only print entries whose preview contains this text")
	cmd.Flags().Int("max-items", 50, "maximum number of history entries")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupStderrLogging(cfg)

	query, _ := cmd.Flags().GetString("query")
	asJSON, _ := cmd.Flags().GetBool("json")

	entries, err := app.List(cmd.Context(), cfg, query)
	if err != nil {
		return err
	}
	logger.Debug("history listed", "entries", len(entries), "query", query)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(out, e.Line()); err != nil {
			return err
		}
	}
	return nil
}
