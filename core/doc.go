// Package core provides a thread-safe, in-memory capacitated directed Graph
// with a minimal API surface, used as the input model for max-flow and
// bipartite matching.
//
// The Graph G = (V,E) has these properties:
//
//   - Every edge is directed and carries an int64 capacity.
//   - At most one edge per ordered pair (u,v); a second AddEdge(u,v) returns
//     ErrMultiEdgeNotAllowed. Use SetCapacity to change an existing edge.
//   - Self-loops are rejected unless the graph is built WithLoops().
//   - Iteration is deterministic and follows insertion order:
//     Vertices() in first-seen order, Neighbors(u) and Edges() in the order
//     edges were added. Augmenting-path search depends on this for
//     reproducible results.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) so concurrent readers do not contend with each other.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1)
//	HasVertex(id string) bool               // O(1)
//	Vertices() []string                     // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(from, to string, capacity int64) error  // O(1)
//	SetCapacity(from, to string, capacity int64) error
//	HasEdge(from, to string) bool           // O(1)
//	Capacity(from, to string) (int64, bool) // O(1)
//	Neighbors(id string) ([]Edge, error)    // O(deg), insertion order
//	Edges() []Edge                          // O(E), insertion order
//
//	// Construction helpers
//	Clone() *Graph
//	FromMap(m map[string]map[string]int64, opts ...GraphOption) (*Graph, error)
//
// Capacities are stored as given, including negative values; validating them
// is the responsibility of the algorithm consuming the graph.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("S", "A", 20)
//	_ = g.AddEdge("A", "T", 15)
//	fmt.Println(g.Vertices()) // [S A T]
package core
