package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/internal/storage"
)

func newHistoryCmd(g *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent solver runs",
		Long: `Display the most recent solver runs recorded in the local database.

Examples:
  mazepath history
  mazepath history --limit 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if cfg.Storage.Path == "" {
				return errors.New("storage is disabled (storage.path is empty)")
			}

			store, err := storage.Open(cfg.Storage.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			fmt.Fprintf(out, "  %-4s  %-12s  %-10s  %-6s  %s\n", "ID", "Input", "Cost", "Tiles", "Date")
			fmt.Fprintf(out, "  %-4s  %-12s  %-10s  %-6s  %s\n", "--", "-----", "----", "-----", "----")
			for _, r := range runs {
				sha := r.InputSHA
				if len(sha) > 12 {
					sha = sha[:12]
				}
				fmt.Fprintf(out, "  %-4d  %-12s  %-10d  %-6d  %s\n",
					r.ID, sha, r.MinCost, r.TileCount, r.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show")

	return cmd
}
