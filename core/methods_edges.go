// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetCapacity/HasEdge/Capacity,
//       Neighbors/NeighborIDs, Edges/EdgeCount.
// Determinism:
//   - Neighbors(u) and Edges() return edges in insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

// AddEdge creates the directed edge from→to with the given capacity,
// adding missing endpoints as vertices (from first, then to).
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge for the same ordered pair.
//  4. Store the edge in adjacency, out[from], and the global edge list.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, capacity int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacency[from][to]; ok {
		return ErrMultiEdgeNotAllowed
	}
	e := &Edge{From: from, To: to, Capacity: capacity}
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]*Edge)
	}
	g.adjacency[from][to] = e
	g.out[from] = append(g.out[from], e)
	g.edges = append(g.edges, e)

	return nil
}

// SetCapacity replaces the capacity of the existing edge from→to.
// Returns ErrEdgeNotFound if there is no such edge.
func (g *Graph) SetCapacity(from, to string, capacity int64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Capacity = capacity

	return nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Capacity returns the capacity of from→to and whether the edge exists.
func (g *Graph) Capacity(from, to string) (int64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}

	return e.Capacity, true
}

// Neighbors returns copies of the outgoing edges of id in insertion order.
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	list := g.out[id]
	res := make([]Edge, len(list))
	for i, e := range list {
		res[i] = *e
	}

	return res, nil
}

// NeighborIDs returns the heads of the outgoing edges of id in insertion order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbs))
	for i := range nbs {
		ids[i] = nbs[i].To
	}

	return ids, nil
}

// Edges returns copies of all edges in insertion order.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	res := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		res[i] = *e
	}

	return res
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
