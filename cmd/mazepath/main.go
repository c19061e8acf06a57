// mazepath solves reindeer mazes: the cheapest route from S to E when a
// step costs 1 and a quarter turn costs 1000, and the number of tiles that
// lie on at least one cheapest route.
//
// Usage:
//
//	mazepath solve [file|-]   - Solve a maze from a file or stdin
//	mazepath solve --fetch    - Solve the configured puzzle input
//	mazepath fetch            - Print the configured puzzle input
//	mazepath history          - Show recent solver runs
//
// Global flags:
//
//	--config <path>  - Config file (default search: ~/.mazepath/config.yaml, ./configs/mazepath.yaml)
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/puzzleinput"
	"github.com/katalvlaran/mazepath/internal/storage"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "mazepath",
		Short: "Reindeer maze solver",
		Long: `mazepath finds the cheapest route through a reindeer maze and counts
the tiles that belong to at least one cheapest route.

Available commands:
  solve    - Solve a maze from a file, stdin or the puzzle site
  fetch    - Download (or read from cache) the puzzle input
  history  - Show recent solver runs

Examples:
  mazepath solve maze.txt
  cat maze.txt | mazepath solve -
  mazepath solve --fetch --show
  mazepath history`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to config file")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")

	root.AddCommand(newSolveCmd(g))
	root.AddCommand(newFetchCmd(g))
	root.AddCommand(newHistoryCmd(g))

	return root
}

// setup loads the configuration and builds the logger for a command.
func (g *globalFlags) setup(cmd *cobra.Command) (config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, nil, err
	}

	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "mazepath",
	})
	level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		level = log.InfoLevel
	}
	if g.debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	return cfg, logger, nil
}

// newFetcher builds a Fetcher for cfg, caching through store when it is non-nil.
func newFetcher(cfg config.Config, store *storage.Store, logger *log.Logger) (*puzzleinput.Fetcher, error) {
	session, _, err := config.SessionCookie(cfg)
	if err != nil {
		return nil, err
	}
	opts := []puzzleinput.Option{puzzleinput.WithLogger(logger)}
	if store != nil {
		opts = append(opts, puzzleinput.WithStore(store))
	}
	return puzzleinput.New(cfg.Input.BaseURL, session, opts...), nil
}
