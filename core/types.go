// Package core defines the capacitated directed Graph used by the flow and
// matching packages, and provides thread-safe primitives for building,
// querying, and cloning it.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same ordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for an ordered pair that already has one.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed arc From→To carrying an integer Capacity.
//
// Edges returned by Graph methods are copies; mutating them does not
// affect the Graph. Use SetCapacity to change a stored capacity.
type Edge struct {
	// From is the tail vertex ID.
	From string

	// To is the head vertex ID.
	To string

	// Capacity is the upper bound on flow along this edge.
	// The Graph stores any value; the flow package rejects negatives.
	Capacity int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// Flow algorithms never traverse them.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory directed graph with at most one capacitated edge per
// ordered vertex pair.
//
// Iteration is deterministic: Vertices() returns vertices in the order they
// were first added, Neighbors(u) and Edges() return edges in insertion order.
// muVert protects the vertex catalog; muEdgeAdj protects edges and adjacency.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards adjacency, out, edges

	allowLoops bool

	vertices map[string]struct{} // vertex ID set
	order    []string            // vertex IDs in insertion order

	// adjacency[from][to] = edge, for O(1) lookups
	adjacency map[string]map[string]*Edge
	// out[from] = outgoing edges in insertion order
	out map[string][]*Edge
	// edges in global insertion order
	edges []*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Edge),
		out:       make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}
