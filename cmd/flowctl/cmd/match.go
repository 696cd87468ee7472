package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxflow/problem"
)

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match FILE",
		Short: "Compute a maximum bipartite matching",
		Long: `Compute a maximum-cardinality matching between the left and right
node sets of FILE, a YAML or TOML problem of kind "matching".`,
		Args: cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			p, err := loadKind(args[0], problem.KindMatching)
			if err != nil {
				return err
			}

			return a.solveMatching(cmd.Context(), p, cmd.OutOrStdout())
		}),
	}
}
