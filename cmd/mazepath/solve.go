package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/storage"
	"github.com/katalvlaran/mazepath/maze"
)

type solveFlags struct {
	fetch    bool
	show     bool
	stepCost int64
	turnCost int64
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve a maze",
		Long: `Solve a maze and print the minimal route cost and the number of tiles
on at least one minimal route, one per line.

Read the maze from a file, from stdin with "-", or from the puzzle site
with --fetch.

Examples:
  mazepath solve maze.txt
  mazepath solve - < maze.txt
  mazepath solve --fetch --show
  mazepath solve maze.txt --turn-cost 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, f, args)
		},
	}

	cmd.Flags().BoolVar(&f.fetch, "fetch", false, "Fetch the configured puzzle input instead of reading a file")
	cmd.Flags().BoolVar(&f.show, "show", false, "Render the maze with optimal tiles marked")
	cmd.Flags().Int64Var(&f.stepCost, "step-cost", -1, "Override the cost of a forward step")
	cmd.Flags().Int64Var(&f.turnCost, "turn-cost", -1, "Override the cost of a quarter turn")

	return cmd
}

func runSolve(cmd *cobra.Command, g *globalFlags, f *solveFlags, args []string) error {
	cfg, logger, err := g.setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("step-cost") {
		cfg.Costs.Step = f.stepCost
	}
	if cmd.Flags().Changed("turn-cost") {
		cfg.Costs.Turn = f.turnCost
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Storage is optional: the solver works without it.
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	input, err := readMaze(cmd, cfg, f, args, store, logger)
	if err != nil {
		return err
	}

	m, err := grid.Parse(bytes.NewReader(input))
	if err != nil {
		return err
	}
	res, err := maze.Solve(m,
		maze.WithContext(cmd.Context()),
		maze.WithStepCost(cfg.Costs.Step),
		maze.WithTurnCost(cfg.Costs.Turn),
		maze.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.MinCost)
	fmt.Fprintln(out, res.TileCount)

	if f.show {
		fmt.Fprintln(out)
		fmt.Fprint(out, maze.Render(m, res))
	}

	if store != nil {
		sum := sha256.Sum256(input)
		if _, err := store.RecordRun(cmd.Context(), hex.EncodeToString(sum[:]), res.MinCost, res.TileCount); err != nil {
			logger.Warn("could not record run", "error", err)
		} else {
			logger.Debug("run recorded", "input_sha", hex.EncodeToString(sum[:8]))
		}
	}
	return nil
}

// readMaze returns the raw maze text selected by the flags and arguments.
func readMaze(cmd *cobra.Command, cfg config.Config, f *solveFlags, args []string, store *storage.Store, logger *log.Logger) ([]byte, error) {
	switch {
	case f.fetch && len(args) > 0:
		return nil, errors.New("--fetch cannot be combined with a file argument")
	case f.fetch:
		fetcher, err := newFetcher(cfg, store, logger)
		if err != nil {
			return nil, err
		}
		return fetcher.Fetch(cmd.Context(), cfg.Input.Year, cfg.Input.Day)
	case len(args) == 0:
		return nil, errors.New("no maze given: pass a file, - for stdin, or --fetch")
	case args[0] == "-":
		return io.ReadAll(cmd.InOrStdin())
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("cannot read maze: %w", err)
		}
		return data, nil
	}
}

// openStore opens the configured database, logging and returning nil on failure.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	if cfg.Storage.Path == "" {
		return nil
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open database", "path", cfg.Storage.Path, "error", err)
		return nil
	}
	return store
}
