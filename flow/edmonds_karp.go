package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/maxflow/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns a Result holding:
//   - Value:    total flow value
//   - Flow:     realized flow per original edge
//   - Residual: residual network after the last round
//   - Rounds:   number of augmentations
//
// Errors (all detected before any augmentation):
//   - ErrSourceNotFound, ErrSinkNotFound, ErrSameSourceSink
//   - CapacityError on a negative capacity
//
// All of them match errors.Is(err, ErrInvalidInput). A canceled ctx yields
// ctx.Err() and no result; opts.MaxRounds yields ErrRoundLimit.
//
// Options (nil uses defaults):
//   - Observer:  called once per round with (index, path, bottleneck, total)
//   - MaxRounds: optional guard on the number of rounds
//
// Steps:
//  1. Validate source/sink and build the residual network.
//  2. Repeat: BFS for an augmenting path; stop when none exists.
//  3. Push the bottleneck along every arc of the path and update the record:
//     forward arcs add flow, reverse arcs cancel flow on the opposite edge.
//
// Each round adds at least one unit and at most |V|·|E| rounds run.
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts *FlowOptions,
) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	// 1) Validate presence of source/sink
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}

	// 2) Build residual network (rejects negative capacities)
	rn, err := NewResidualNetwork(g)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Flow:     newFlowRecord(g),
		Residual: rn,
		Source:   source,
		Sink:     sink,
	}

	// 3) Main loop: find BFS augmenting paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		path, ok := FindAugmentingPath(rn, source, sink)
		if !ok {
			break
		}
		if opts.MaxRounds > 0 && res.Rounds >= opts.MaxRounds {
			return nil, ErrRoundLimit
		}

		bottle := rn.Bottleneck(path)
		for _, e := range path {
			rn.push(e.From, e.To, bottle)
			res.Flow.apply(e.From, e.To, bottle)
		}
		res.Value += bottle
		res.Rounds++

		if opts.Observer != nil {
			opts.Observer.OnAugment(Round{
				Index:      res.Rounds,
				Path:       path,
				Bottleneck: bottle,
				Total:      res.Value,
			})
		}
	}

	return res, nil
}

// MaxFlow is the map-based convenience form of EdmondsKarp: it builds a
// graph with core.FromMap and returns the flow value and the per-edge flow
// as a nested map containing every original edge.
//
// Self-loops are accepted and carry no flow. Graph construction errors
// (an empty vertex ID) are wrapped in ErrInvalidInput.
func MaxFlow(capacities map[string]map[string]int64, source, sink string) (int64, map[string]map[string]int64, error) {
	g, err := core.FromMap(capacities, core.WithLoops())
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	res, err := EdmondsKarp(context.Background(), g, source, sink, nil)
	if err != nil {
		return 0, nil, err
	}

	out := make(map[string]map[string]int64, len(capacities))
	for _, e := range res.Flow.Entries() {
		if out[e.Edge.From] == nil {
			out[e.Edge.From] = make(map[string]int64)
		}
		out[e.Edge.From][e.Edge.To] = e.Flow
	}

	return res.Value, out, nil
}

// Verify checks r.Flow for capacity respect and conservation.
func (r *Result) Verify() error {
	return r.Flow.Verify(r.Source, r.Sink)
}
