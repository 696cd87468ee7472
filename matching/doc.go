// Package matching computes maximum-cardinality bipartite matchings by
// reduction to maximum flow.
//
// Given disjoint node sets L and R and allowed pairs E ⊆ L×R, Match builds
//
//	source ─1→ l ─1→ r ─1→ sink      for l ∈ L, (l,r) ∈ E, r ∈ R
//
// runs flow.EdmondsKarp, and reports the l→r edges that carry one unit.
// The matching size is provably maximum; which of several maximum matchings
// is returned depends only on the order of Left, Right and Pairs.
//
// Errors:
//
//	EdgeError          - a pair references a node outside its side (wraps ErrInvalidEdge).
//	ErrInvalidInstance - empty/duplicate IDs, overlapping sides, clashing terminals.
//	flow errors        - propagated from the engine (cancellation, round limit).
//
// MatchAll solves many independent instances concurrently.
package matching
