package flow_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxflow/core"
	"github.com/katalvlaran/maxflow/flow"
)

// buildRandomGraph constructs a directed graph with V vertices and roughly
// p probability of an edge between any ordered pair u→v.
// Capacities are uniform in [0, maxCap].
func buildRandomGraph(t require.TestingT, V int, p float64, maxCap int64, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < V; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u == v {
				continue
			}
			if r.Float64() < p {
				require.NoError(t, g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), r.Int63n(maxCap+1)))
			}
		}
	}

	return g
}

// bruteForceMinCut enumerates every vertex subset containing s but not t
// and returns the smallest crossing capacity.
func bruteForceMinCut(g *core.Graph, s, t string) int64 {
	vertices := g.Vertices()
	edges := g.Edges()
	best := int64(-1)
	for mask := 0; mask < 1<<len(vertices); mask++ {
		side := make(map[string]bool, len(vertices))
		for i, v := range vertices {
			side[v] = mask&(1<<i) != 0
		}
		if !side[s] || side[t] {
			continue
		}
		var c int64
		for _, e := range edges {
			if side[e.From] && !side[e.To] {
				c += e.Capacity
			}
		}
		if best < 0 || c < best {
			best = c
		}
	}

	return best
}

// TestRandomGraphProperties checks conservation, capacity respect,
// max-flow = min-cut (both derived and brute force), and the round bound.
func TestRandomGraphProperties(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 60; seed++ {
		V := 3 + int(seed%6) // 3..8 vertices keeps brute force cheap
		g := buildRandomGraph(t, V, 0.45, 12, seed)
		s, sink := "0", strconv.Itoa(V-1)

		var rounds int
		obs := flow.ObserverFunc(func(r flow.Round) {
			rounds++
			require.Equal(t, rounds, r.Index)
			require.Positive(t, r.Bottleneck)
		})
		res, err := flow.EdmondsKarp(ctx, g, s, sink, &flow.FlowOptions{Observer: obs})
		require.NoError(t, err, "seed %d", seed)

		require.NoError(t, res.Verify(), "seed %d", seed)
		require.Equal(t, res.Value, res.Flow.Outflow(s)-res.Flow.Inflow(s), "seed %d", seed)
		require.Equal(t, res.Value, res.Flow.Inflow(sink)-res.Flow.Outflow(sink), "seed %d", seed)

		require.Equal(t, res.Value, res.MinCut().Capacity, "seed %d", seed)
		require.Equal(t, bruteForceMinCut(g, s, sink), res.Value, "seed %d", seed)

		require.Equal(t, rounds, res.Rounds)
		require.LessOrEqual(t, res.Rounds, g.VertexCount()*g.EdgeCount(), "seed %d", seed)

		_, more := flow.FindAugmentingPath(res.Residual, s, sink)
		require.False(t, more, "no augmenting path may remain, seed %d", seed)
	}
}

// TestDeterministic: repeated runs on the same graph give identical records.
func TestDeterministic(t *testing.T) {
	g := buildRandomGraph(t, 30, 0.2, 50, 7)
	first, err := flow.EdmondsKarp(context.Background(), g, "0", "29", nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := flow.EdmondsKarp(context.Background(), g, "0", "29", nil)
		require.NoError(t, err)
		require.Equal(t, first.Flow.Entries(), again.Flow.Entries())
		require.Equal(t, first.Rounds, again.Rounds)
	}
}
