package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/search"
)

func newAlgorithmsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available search strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fprintln(out, root.renderer(out, nil).Catalog(search.Catalog()))
			return nil
		},
	}
}
