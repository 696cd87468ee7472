// Command flowctl solves max-flow and bipartite matching problems described
// in YAML or TOML files.
//
//	flowctl maxflow network.yaml
//	flowctl match jobs.toml --trace
//	flowctl batch problems/*.yaml --workers 8 --metrics-file flowctl.prom
package main

import "github.com/katalvlaran/maxflow/cmd/flowctl/cmd"

func main() {
	cmd.Execute()
}
