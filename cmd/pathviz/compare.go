package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/search"
)

func newCompareCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run every strategy on the same grid without pacing and tabulate the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			grid, err := root.cfg.BuildGrid()
			if err != nil {
				return err
			}
			if !grid.Ready() {
				return search.ErrMissingEndpoints
			}

			results := make([]search.Results, 0, len(search.Catalog()))
			for _, info := range search.Catalog() {
				res, err := runUnpaced(grid.Clone(), info.Algorithm, root)
				if err != nil {
					return fmt.Errorf("%s: %w", info.ID, err)
				}
				results = append(results, res)
			}

			out := cmd.OutOrStdout()
			fprintln(out, root.renderer(out, grid).Compare(results))
			return nil
		},
	}
}

// runUnpaced steps a fresh engine to completion as fast as possible.
func runUnpaced(grid search.Grid, algo search.Algorithm, root *rootOptions) (search.Results, error) {
	e, err := search.NewEngine(grid, algo, search.WithLogger(root.logger))
	if err != nil {
		return search.Results{}, err
	}
	if err := e.Begin(); err != nil {
		return search.Results{}, err
	}
	for !e.IsComplete() {
		e.Step()
	}
	return e.Results(), nil
}
