package flow

import "github.com/katalvlaran/maxflow/core"

// ResidualNetwork holds the remaining capacity of every arc during one
// max-flow computation.
//
// For every original edge u→v with capacity c, the network contains the arc
// u→v with residual c and the arc v→u (residual 0 unless v→u is itself an
// original edge). Both entries exist from construction on, so augmentation
// never needs existence checks.
//
// Neighbor order per vertex: heads of original edges in graph insertion
// order, followed by reverse-only arcs in the order their edges were seen.
// Self-loops are left out; they can never lie on a simple augmenting path.
type ResidualNetwork struct {
	order []string
	next  map[string][]string
	cap   map[string]map[string]int64
}

// NewResidualNetwork builds the residual network of g.
// It returns CapacityError if any edge has a negative capacity.
//
// Steps:
//  1. Register every vertex of g in insertion order.
//  2. Add forward arcs u→v with residual = capacity.
//  3. Add missing reverse arcs v→u with residual 0.
//
// Complexity: O(V + E).
func NewResidualNetwork(g *core.Graph) (*ResidualNetwork, error) {
	vertices := g.Vertices()
	edges := g.Edges()

	rn := &ResidualNetwork{
		order: vertices,
		next:  make(map[string][]string, len(vertices)),
		cap:   make(map[string]map[string]int64, len(vertices)),
	}
	for _, v := range vertices {
		rn.cap[v] = make(map[string]int64)
	}

	for _, e := range edges {
		if e.Capacity < 0 {
			return nil, CapacityError{From: e.From, To: e.To, Capacity: e.Capacity}
		}
		if e.From == e.To {
			continue
		}
		rn.cap[e.From][e.To] = e.Capacity
		rn.next[e.From] = append(rn.next[e.From], e.To)
	}
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		if _, ok := rn.cap[e.To][e.From]; !ok {
			rn.cap[e.To][e.From] = 0
			rn.next[e.To] = append(rn.next[e.To], e.From)
		}
	}

	return rn, nil
}

// HasVertex reports whether id is a vertex of the network.
func (rn *ResidualNetwork) HasVertex(id string) bool {
	_, ok := rn.cap[id]
	return ok
}

// Vertices returns the vertex IDs in graph insertion order.
func (rn *ResidualNetwork) Vertices() []string {
	out := make([]string, len(rn.order))
	copy(out, rn.order)

	return out
}

// Neighbors returns the arc heads of u in search order, including arcs whose
// residual is currently zero.
func (rn *ResidualNetwork) Neighbors(u string) []string {
	out := make([]string, len(rn.next[u]))
	copy(out, rn.next[u])

	return out
}

// Residual returns the remaining capacity of u→v, or 0 if there is no such arc.
func (rn *ResidualNetwork) Residual(u, v string) int64 {
	return rn.cap[u][v]
}

// Bottleneck returns the minimum residual along p, or 0 for an empty path.
func (rn *ResidualNetwork) Bottleneck(p AugmentingPath) int64 {
	if len(p) == 0 {
		return 0
	}
	b := rn.cap[p[0].From][p[0].To]
	for _, e := range p[1:] {
		if c := rn.cap[e.From][e.To]; c < b {
			b = c
		}
	}

	return b
}

// push moves delta units along u→v: residual(u,v) drops, residual(v,u) grows.
// Callers guarantee 0 < delta ≤ residual(u,v) and that both arcs exist.
func (rn *ResidualNetwork) push(u, v string, delta int64) {
	rn.cap[u][v] -= delta
	rn.cap[v][u] += delta
}
