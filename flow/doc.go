// Package flow implements the Edmonds–Karp maximum-flow algorithm on graphs
// represented by *core.Graph, together with the residual-network and
// flow-record types it works with.
//
// # Algorithm
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths
//     in the residual network; push the bottleneck along each path.
//
//   - Time:   O(V · E²) with integer capacities; at most |V|·|E| rounds.
//
//   - Memory: O(V + E) for the residual map, flow record and BFS queue.
//
//   - Termination: every round adds at least one unit of flow, and total flow
//     is bounded by the capacity leaving the source.
//
// # Data model
//
//	ResidualNetwork  - built once per computation by NewResidualNetwork; for
//	                   every edge u→v both arcs u→v and v→u exist.
//	AugmentingPath   - []Edge from source to sink, rebuilt each round.
//	FlowRecord       - flow per original edge, 0 ≤ flow ≤ capacity.
//	Result           - Value, Flow, Residual, Rounds.
//	Cut              - min s-t cut derived from a Result (Result.MinCut).
//
// Neighbor order in the residual network follows graph insertion order
// (see core.Graph), so results are reproducible run to run.
//
// # API
//
//	func EdmondsKarp(
//	    ctx context.Context,
//	    g *core.Graph,
//	    source, sink string,
//	    opts *FlowOptions,
//	) (*Result, error)
//
//	func FindAugmentingPath(rn *ResidualNetwork, source, sink string) (AugmentingPath, bool)
//	func MaxFlow(capacities map[string]map[string]int64, source, sink string) (int64, map[string]map[string]int64, error)
//
// FlowOptions:
//
//	type FlowOptions struct {
//	    Observer  Observer // called once per augmentation round
//	    MaxRounds int      // optional guard; 0 = unlimited
//	}
//
// The Observer sees Round{Index, Path, Bottleneck, Total} after each round and
// cannot influence the computation. See package observe for logging and
// metrics implementations.
//
// # Errors
//
//	ErrSourceNotFound  - source vertex missing.
//	ErrSinkNotFound    - sink vertex missing.
//	ErrSameSourceSink  - source == sink.
//	CapacityError      - an edge has negative capacity.
//	ErrRoundLimit      - FlowOptions.MaxRounds exceeded.
//	ctx.Err()          - ctx canceled between rounds.
//
// The first four wrap ErrInvalidInput and are reported before any state is
// mutated; no partial result is ever returned.
//
// # Verification
//
// FlowRecord.Verify (and Result.Verify) check capacity respect and flow
// conservation, reporting OverflowError or ConservationError (both wrap
// ErrInfeasible).
package flow
