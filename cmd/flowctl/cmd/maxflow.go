package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxflow/problem"
)

func newMaxFlowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "maxflow FILE",
		Short: "Compute the maximum flow and a minimum cut of a network",
		Long: `Compute the maximum flow from source to sink with Edmonds–Karp.

FILE is a YAML or TOML problem of kind "maxflow". The report lists the flow
on every edge as "u -> v : flow/capacity" followed by a minimum cut.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			p, err := loadKind(args[0], problem.KindMaxFlow)
			if err != nil {
				return err
			}

			return a.solveMaxFlow(cmd.Context(), p, cmd.OutOrStdout())
		}),
	}
}

// loadKind loads path and checks it describes a problem of the given kind.
func loadKind(path string, kind problem.Kind) (*problem.Problem, error) {
	p, err := problem.Load(path)
	if err != nil {
		return nil, err
	}
	if p.Kind != kind {
		return nil, fmt.Errorf("%s: is a %q problem, want %q", path, p.Kind, kind)
	}

	return p, nil
}
