// File: methods_clone.go
// Role: Cloning graph instances and building them from nested capacity maps.
// Determinism:
//   - Clone keeps vertex and edge insertion order.
//   - FromMap inserts vertices and edges in lexicographic order.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sort"

// Clone returns a deep copy of the Graph: options, vertices, and edges,
// in the same insertion order.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	clone := &Graph{
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		order:      make([]string, len(g.order)),
	}
	copy(clone.order, g.order)
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	clone.adjacency = make(map[string]map[string]*Edge, len(g.adjacency))
	clone.out = make(map[string][]*Edge, len(g.out))
	clone.edges = make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		c := &Edge{From: e.From, To: e.To, Capacity: e.Capacity}
		if clone.adjacency[c.From] == nil {
			clone.adjacency[c.From] = make(map[string]*Edge)
		}
		clone.adjacency[c.From][c.To] = c
		clone.out[c.From] = append(clone.out[c.From], c)
		clone.edges = append(clone.edges, c)
	}

	return clone
}

// FromMap builds a Graph from the nested shape m[from][to] = capacity.
//
// Go maps carry no order, so vertices are inserted in lexicographic order
// of the outer keys, and each vertex's edges in lexicographic order of their
// heads. Keys with an empty inner map still become vertices.
//
// Complexity: O(V log V + E log d_max).
func FromMap(m map[string]map[string]int64, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)

	froms := make([]string, 0, len(m))
	for u := range m {
		froms = append(froms, u)
	}
	sort.Strings(froms)

	for _, u := range froms {
		if err := g.AddVertex(u); err != nil {
			return nil, err
		}
	}
	for _, u := range froms {
		tos := make([]string, 0, len(m[u]))
		for v := range m[u] {
			tos = append(tos, v)
		}
		sort.Strings(tos)
		for _, v := range tos {
			if err := g.AddEdge(u, v, m[u][v]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
