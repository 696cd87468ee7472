package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/maxflow/core"
	"github.com/katalvlaran/maxflow/flow"
)

// Match computes a maximum-cardinality matching of inst.
//
// Steps:
//  1. Validate the instance; every pair must have its left endpoint in Left
//     and its right endpoint in Right (EdgeError otherwise). Nothing is built
//     until validation passes.
//  2. Build the auxiliary network: source→l (1) for each l in Left,
//     l→r (1) for each allowed pair, r→sink (1) for each r in Right.
//  3. Run flow.EdmondsKarp from source to sink.
//  4. Select every l→r edge carrying exactly one unit.
//
// With unit capacities the integral max flow decomposes into 0/1 edge flows,
// so the flow value is the size of a maximum matching and each vertex of
// Left and Right carries at most one unit.
//
// Complexity: O(V · E²) with V = |L|+|R|+2, E = |L|+|R|+|pairs|.
func Match(ctx context.Context, inst Instance, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	leftIdx, rightIdx, err := validate(inst)
	if err != nil {
		return nil, err
	}
	source, sink, err := terminals(leftIdx, rightIdx, opts)
	if err != nil {
		return nil, err
	}

	g, err := buildNetwork(inst, source, sink)
	if err != nil {
		return nil, err
	}

	res, err := flow.EdmondsKarp(ctx, g, source, sink, opts.Flow)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, res.Value)
	for _, e := range res.Flow.Entries() {
		if _, ok := leftIdx[e.Edge.From]; !ok {
			continue
		}
		if _, ok := rightIdx[e.Edge.To]; !ok {
			continue
		}
		if e.Flow == 1 {
			pairs = append(pairs, Pair{Left: e.Edge.From, Right: e.Edge.To})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		li, lj := leftIdx[pairs[i].Left], leftIdx[pairs[j].Left]
		if li != lj {
			return li < lj
		}
		return rightIdx[pairs[i].Right] < rightIdx[pairs[j].Right]
	})

	return &Result{Size: len(pairs), Pairs: pairs, Rounds: res.Rounds}, nil
}

// validate indexes both sides and checks every pair against them.
func validate(inst Instance) (left, right map[string]int, err error) {
	left = make(map[string]int, len(inst.Left))
	for i, id := range inst.Left {
		if id == "" {
			return nil, nil, fmt.Errorf("%w: empty left node ID", ErrInvalidInstance)
		}
		if _, dup := left[id]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate left node %q", ErrInvalidInstance, id)
		}
		left[id] = i
	}

	right = make(map[string]int, len(inst.Right))
	for i, id := range inst.Right {
		if id == "" {
			return nil, nil, fmt.Errorf("%w: empty right node ID", ErrInvalidInstance)
		}
		if _, dup := right[id]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate right node %q", ErrInvalidInstance, id)
		}
		if _, both := left[id]; both {
			return nil, nil, fmt.Errorf("%w: node %q is on both sides", ErrInvalidInstance, id)
		}
		right[id] = i
	}

	for _, p := range inst.Pairs {
		if _, ok := left[p.Left]; !ok {
			return nil, nil, EdgeError{Pair: p, Side: "left"}
		}
		if _, ok := right[p.Right]; !ok {
			return nil, nil, EdgeError{Pair: p, Side: "right"}
		}
	}

	return left, right, nil
}

// terminals resolves the synthetic source and sink names.
func terminals(left, right map[string]int, opts *Options) (source, sink string, err error) {
	taken := func(id string) bool {
		_, l := left[id]
		_, r := right[id]
		return l || r
	}
	pick := func(want, fallback string) (string, error) {
		if want != "" {
			if taken(want) {
				return "", fmt.Errorf("%w: terminal %q clashes with an instance node", ErrInvalidInstance, want)
			}
			return want, nil
		}
		id := fallback
		for taken(id) {
			id = "_" + id
		}
		return id, nil
	}

	if source, err = pick(opts.Source, "s"); err != nil {
		return "", "", err
	}
	if sink, err = pick(opts.Sink, "t"); err != nil {
		return "", "", err
	}
	if source == sink {
		return "", "", fmt.Errorf("%w: source and sink are both %q", ErrInvalidInstance, source)
	}

	return source, sink, nil
}

// buildNetwork lays out source, Left, Right, sink in that insertion order so
// the search explores candidates in the caller's order. Repeated pairs
// collapse into one edge.
func buildNetwork(inst Instance, source, sink string) (*core.Graph, error) {
	g := core.NewGraph()
	if err := g.AddVertex(source); err != nil {
		return nil, err
	}
	for _, l := range inst.Left {
		if err := g.AddEdge(source, l, 1); err != nil {
			return nil, err
		}
	}
	for _, r := range inst.Right {
		if err := g.AddVertex(r); err != nil {
			return nil, err
		}
	}
	for _, p := range inst.Pairs {
		if g.HasEdge(p.Left, p.Right) {
			continue
		}
		if err := g.AddEdge(p.Left, p.Right, 1); err != nil {
			return nil, err
		}
	}
	for _, r := range inst.Right {
		if err := g.AddEdge(r, sink, 1); err != nil {
			return nil, err
		}
	}
	if err := g.AddVertex(sink); err != nil {
		return nil, err
	}

	return g, nil
}
