package main

import (
	"github.com/spf13/cobra"
)

func newFetchCmd(g *globalFlags) *cobra.Command {
	var year, day int

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print the configured puzzle input",
		Long: `Download the puzzle input (or read it from the local cache) and print it.

The session cookie is read from the variable named by input.session_env
(AOC_SESSION by default), which may also be set in a .env file.

Examples:
  mazepath fetch > maze.txt
  mazepath fetch --year 2024 --day 16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("year") {
				cfg.Input.Year = year
			}
			if cmd.Flags().Changed("day") {
				cfg.Input.Day = day
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			store := openStore(cfg, logger)
			if store != nil {
				defer store.Close()
			}

			fetcher, err := newFetcher(cfg, store, logger)
			if err != nil {
				return err
			}
			body, err := fetcher.Fetch(cmd.Context(), cfg.Input.Year, cfg.Input.Day)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Puzzle year (default from config)")
	cmd.Flags().IntVar(&day, "day", 0, "Puzzle day (default from config)")

	return cmd
}
