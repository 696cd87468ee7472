// Package maxflow computes maximum flows and maximum bipartite matchings on
// in-memory graphs.
//
// The module is organized as:
//
//	core/     - directed capacity graph with deterministic insertion-order iteration
//	flow/     - Edmonds–Karp: residual network, augmenting paths, flow record, min cut
//	matching/ - maximum bipartite matching by reduction to max flow
//	observe/  - flow.Observer implementations (logrus tracing, Prometheus metrics)
//	problem/  - YAML/TOML problem files decoded into graphs and matching instances
//	cmd/flowctl - command-line front end
//
// Quick example:
//
//	    15      15
//	  S ──→ A ──→ C ──25──→ T
//	  │10        ↑
//	  └──→ B ────┘10
//
//	g := core.NewGraph()
//	_ = g.AddEdge("S", "A", 15)
//	...
//	res, _ := flow.EdmondsKarp(ctx, g, "S", "T", nil) // res.Value == 25
//
// All computations are deterministic: the same graph built in the same order
// yields the same augmenting paths, flows and matchings.
package maxflow
